// Package delivery defines the contract every transport adapter fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// runner. Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
