// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

// Package client implements the keyhub command-line client.
//
// It wires the HTTP server adapter and the local sqlite cache into a set of
// commands for managing a publisher account, its device lists and bundles,
// and its external service announcements. Fetched documents are cached
// locally so reads keep working when the server is unreachable.
package client
