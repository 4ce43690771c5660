// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP API, worker endpoint).
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
