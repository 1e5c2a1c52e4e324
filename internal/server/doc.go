// Package server owns the lifecycle of the inbound HTTP transport.
// It starts the listener, waits for the shutdown context and drains
// in-flight requests before returning.
package server
