// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is implemented by every server the application can expose.
type Delivery interface {
	// Serve starts the server and blocks until it stops.
	Serve(ctx context.Context) error
}
