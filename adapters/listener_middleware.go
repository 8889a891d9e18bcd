// File: adapters/listener_middleware.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Listener decorators: composable wrappers that add logging, panic
// recovery, and metrics around any api.Listener.

package adapters

import (
	"log"
	"sync/atomic"

	"github.com/momentics/hioload-queue/api"
)

// ListenerMiddleware decorates one listener with another.
type ListenerMiddleware[T any] func(api.Listener[T]) api.Listener[T]

// Chain wraps base in mw, first middleware outermost. Chain(base, a, b)
// delivers events through a, then b, then base.
func Chain[T any](base api.Listener[T], mw ...ListenerMiddleware[T]) api.Listener[T] {
	l := base
	for i := len(mw) - 1; i >= 0; i-- {
		l = mw[i](l)
	}
	return l
}

// LoggingListener logs each event before handing it on.
func LoggingListener[T any](next api.Listener[T]) api.Listener[T] {
	return api.ListenerFunc[T](func(ev T) {
		log.Printf("[listener] event %T: %v", ev, ev)
		next.OnEvent(ev)
	})
}

// RecoveryListener traps a panic in the wrapped listener so listeners
// registered after it still see the event. This is finer-grained than the
// drain loop's own recovery, which abandons the whole dispatch.
func RecoveryListener[T any](next api.Listener[T]) api.Listener[T] {
	return api.ListenerFunc[T](func(ev T) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[listener] panic recovered: %v", r)
			}
		}()
		next.OnEvent(ev)
	})
}

// MetricsListener counts delivered events into c under key.
func MetricsListener[T any](c *ControlAdapter, key string) ListenerMiddleware[T] {
	return func(next api.Listener[T]) api.Listener[T] {
		var count atomic.Uint64
		return api.ListenerFunc[T](func(ev T) {
			c.SetMetric(key, count.Add(1))
			next.OnEvent(ev)
		})
	}
}
