// Package workers runs the background jobs of the stub document server.
// It defines the Worker interface and a Workers aggregate that runs several
// workers until their context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
