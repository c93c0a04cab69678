// Package workers runs the long-lived parts of the application (the HTTP
// server, the background refresh loop) side by side and stops them
// together.
package workers

import "context"

// Worker is a long-running unit of work.
//
// Run blocks until the work is done or ctx is cancelled. A non-nil error
// cancels the context handed to every other worker of the same [Workers].
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (t *ticker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
