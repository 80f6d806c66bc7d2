// Package delivery holds the inbound adapters that expose the use cases.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as the HTTP API server.
type Delivery interface {
	// Serve blocks until the adapter stops or fails.
	Serve(ctx context.Context) error
}
