// File: api/dispatch.go
// Package api defines the listener contract for event dispatch.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Listener receives events from a Notifier or DrainLoop.
//
// OnEvent is invoked synchronously on the notifying goroutine, in listener
// registration order. Implementations must not block for long; they stall
// every listener registered after them.
type Listener[T any] interface {
	OnEvent(ev T)
}

// ListenerFunc adapts a plain function to the Listener interface.
//
// Func values are not comparable, so a ListenerFunc cannot be removed
// through Unregister; use a named type for listeners that come and go.
type ListenerFunc[T any] func(ev T)

// OnEvent calls f(ev).
func (f ListenerFunc[T]) OnEvent(ev T) { f(ev) }
