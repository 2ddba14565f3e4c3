// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's background goroutine and returns immediately.
// Stop cancels it and blocks until the goroutine has fully exited; it is
// safe to call on a worker that was never started.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
