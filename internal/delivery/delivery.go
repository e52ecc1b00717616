// Package delivery holds the entry points that drive the application: the HTTP API and background workers.
package delivery

import "context"

// Delivery is a long-running entry point started by fx.
// Serve blocks until the delivery stops and returns nil on a graceful shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
