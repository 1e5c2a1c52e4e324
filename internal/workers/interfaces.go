// Package workers provides the background workers of the key server.
// It defines the Worker interface and a Workers aggregate that starts
// every worker in its own goroutine.
package workers

import "context"

// Worker is the interface implemented by every background worker. Run
// blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
