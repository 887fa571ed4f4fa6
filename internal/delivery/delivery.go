// Package delivery contains the transports that expose the use cases.
package delivery

import "context"

// Delivery is a server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
