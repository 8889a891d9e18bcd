// File: queue/boxqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Baseline unbounded FIFO: eapache/queue behind a mutex. This is what the
// ecosystem reaches for when it needs a growable queue; SyncQueue exists to
// beat it on garbage.

package queue

import (
	"sync"

	eq "github.com/eapache/queue"

	"github.com/momentics/hioload-queue/api"
)

var _ api.Queue[any] = (*BoxQueue[any])(nil)

// BoxQueue wraps github.com/eapache/queue with a mutex to satisfy the same
// contract as SyncQueue. The wrapped queue stores interface{}, so every
// Enqueue boxes its element through the heap; that per-element allocation is
// exactly the cost SyncQueue avoids, which makes BoxQueue the honest
// comparison point in benchmarks and a drop-in fallback everywhere else.
type BoxQueue[T any] struct {
	mu sync.Mutex
	q  *eq.Queue
}

// NewBoxQueue creates an empty BoxQueue. The wrapped queue manages its own
// capacity; there is no initial-size knob.
func NewBoxQueue[T any]() *BoxQueue[T] {
	return &BoxQueue[T]{q: eq.New()}
}

// Enqueue appends item and returns true; the wrapped queue is unbounded.
func (b *BoxQueue[T]) Enqueue(item T) bool {
	b.mu.Lock()
	b.q.Add(item)
	b.mu.Unlock()
	return true
}

// Dequeue removes and returns the oldest item; ok is false when empty.
func (b *BoxQueue[T]) Dequeue() (item T, ok bool) {
	b.mu.Lock()
	if b.q.Length() == 0 {
		b.mu.Unlock()
		return item, false
	}
	item = b.q.Remove().(T)
	b.mu.Unlock()
	return item, true
}

// Len returns the number of queued items.
func (b *BoxQueue[T]) Len() int {
	b.mu.Lock()
	n := b.q.Length()
	b.mu.Unlock()
	return n
}

// Clear discards all items by replacing the wrapped queue.
func (b *BoxQueue[T]) Clear() {
	b.mu.Lock()
	b.q = eq.New()
	b.mu.Unlock()
}
