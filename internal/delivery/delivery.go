// Package delivery defines the contract every server-facing surface
// implements so cmd binaries can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by the cmd layer.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
