// File: api/lifecycle.go
// Package api defines the start/stop contract shared by long-lived components.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Lifecycle is implemented by components that own background work.
//
// Start is idempotent once running; Stop is idempotent once stopped and
// releases the component's goroutines before returning.
type Lifecycle interface {
	Start() error
	Stop() error
}
