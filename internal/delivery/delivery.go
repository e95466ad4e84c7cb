// Package delivery defines the contract for inbound transports run by the binary.
package delivery

import "context"

// Delivery is a long-running inbound transport such as an HTTP server or event consumer.
type Delivery interface {
	Serve(ctx context.Context) error
}
