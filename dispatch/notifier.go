// File: dispatch/notifier.go
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package dispatch pairs an ordered listener registry with a queue drain
// loop. Notifier fans events out to listeners synchronously; DrainLoop
// feeds it from an api.Queue on a dedicated goroutine.

package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-queue/api"
)

// Notifier keeps an ordered listener registry and fires events to every
// listener on the calling goroutine.
//
// Writes go through a mutex-protected copy-on-write swap; Notify reads an
// atomic snapshot and never blocks registration. Listener identity uses
// interface equality, so values passed to Unregister must be comparable
// (pointer receivers are; ListenerFunc adapters are not removable).
type Notifier[T any] struct {
	listeners   atomic.Value // stores []api.Listener[T] (atomically swapped)
	listenersMu sync.Mutex   // protects writes to listeners slice
}

// NewNotifier returns an empty registry.
func NewNotifier[T any]() *Notifier[T] {
	n := &Notifier[T]{}
	n.listeners.Store([]api.Listener[T]{})
	return n
}

// Register appends l to the registry. Registering the same listener twice
// makes it fire twice per event.
func (n *Notifier[T]) Register(l api.Listener[T]) {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	old := n.listeners.Load().([]api.Listener[T])
	next := make([]api.Listener[T], len(old)+1)
	copy(next, old)
	next[len(old)] = l
	n.listeners.Store(next)
}

// Unregister removes every registration of l, if present.
func (n *Notifier[T]) Unregister(l api.Listener[T]) {
	n.listenersMu.Lock()
	defer n.listenersMu.Unlock()
	old := n.listeners.Load().([]api.Listener[T])
	next := make([]api.Listener[T], 0, len(old))
	for _, reg := range old {
		if reg != l {
			next = append(next, reg)
		}
	}
	n.listeners.Store(next)
}

// Listeners returns a copy of the registry in registration order.
func (n *Notifier[T]) Listeners() []api.Listener[T] {
	cur := n.listeners.Load().([]api.Listener[T])
	out := make([]api.Listener[T], len(cur))
	copy(out, cur)
	return out
}

// Notify delivers ev to every registered listener, in registration order,
// synchronously on the caller's goroutine. A listener panic propagates to
// the caller and abandons the listeners after it.
func (n *Notifier[T]) Notify(ev T) {
	cur := n.listeners.Load().([]api.Listener[T])
	for _, l := range cur {
		l.OnEvent(ev)
	}
}
