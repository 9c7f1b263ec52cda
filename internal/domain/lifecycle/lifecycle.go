// Package lifecycle holds shared start/stop conventions for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of deliveries and
// infrastructure clients.
const DefaultTimeout = 10 * time.Second
