// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hook execution.
const DefaultTimeout = 10 * time.Second
