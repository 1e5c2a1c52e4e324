// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

// Package http implements the HTTP transport layer of the key server.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
//
// Account endpoints speak JSON; key material and service discovery
// endpoints carry the XML payload documents directly in the request and
// response bodies.
package http
