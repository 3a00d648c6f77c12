// Package delivery defines the contract every transport front end implements.
package delivery

import "context"

// Delivery is a long-running transport server managed by the Fx lifecycle.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
