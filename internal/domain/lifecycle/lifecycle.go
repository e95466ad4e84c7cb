// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds OnStart/OnStop work such as pings and graceful shutdown.
	DefaultTimeout = 10 * time.Second
)
