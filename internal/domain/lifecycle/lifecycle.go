// Package lifecycle holds constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds connection checks and graceful shutdown of infrastructure.
const DefaultTimeout = 10 * time.Second
