// Package delivery defines the transport servers the application starts.
package delivery

import "context"

// Delivery is a transport that serves until it fails or is stopped by its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
