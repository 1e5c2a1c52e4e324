package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one command and returns its error, if any.
	Run(ctx context.Context, args []string) error
}
