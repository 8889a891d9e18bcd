// File: queue/syncqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex-guarded unbounded FIFO over a circular buffer. Intended as a
// (mostly) GC-free alternative to a general unbounded queue when the
// requirement is minimum garbage per element and no need to shrink:
// steady-state Enqueue/Dequeue never allocate, only growth and Clear do.

package queue

import (
	"sync"

	"github.com/momentics/hioload-queue/api"
)

// DefaultInitialCap is the buffer capacity used when the caller does not
// supply one.
const DefaultInitialCap = 128

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*SyncQueue[any])(nil)

// SyncQueue is an unbounded FIFO backed by a circular buffer that doubles
// when full. All methods are safe for any number of goroutines; a single
// mutex serializes every operation.
//
// Two cursors index the buffer: head is the next slot to dequeue, tail the
// next slot to enqueue. head==tail means empty; one slot is kept sacrificed
// so that a full buffer is detected the moment tail wraps onto head, before
// the two states become indistinguishable. The buffer therefore holds at
// most Cap()-1 items between growths.
type SyncQueue[T any] struct {
	mu   sync.Mutex
	buf  []T
	head int // next slot to dequeue
	tail int // next slot to enqueue
}

// NewSyncQueue creates a queue with the given initial buffer capacity.
// Non-positive initialCap falls back to DefaultInitialCap. The buffer is
// allocated once here and replaced wholesale on growth.
func NewSyncQueue[T any](initialCap int) *SyncQueue[T] {
	if initialCap <= 0 {
		initialCap = DefaultInitialCap
	}
	return &SyncQueue[T]{
		buf: make([]T, initialCap),
	}
}

// Enqueue appends item and returns true. The queue is unbounded: when the
// insert wraps onto the read cursor the buffer doubles instead of rejecting,
// so pressure is absorbed by growth, never by the caller.
func (q *SyncQueue[T]) Enqueue(item T) bool {
	q.mu.Lock()
	q.buf[q.tail] = item
	q.tail++
	if q.tail == len(q.buf) {
		q.tail = 0
	}
	if q.tail == q.head {
		q.grow()
	}
	q.mu.Unlock()
	return true
}

// Dequeue removes and returns the oldest item. ok is false when the queue is
// empty; empty is an expected steady state, not an error. The vacated slot
// is zeroed so the queue never pins a dequeued element for the collector.
func (q *SyncQueue[T]) Dequeue() (item T, ok bool) {
	q.mu.Lock()
	if q.head == q.tail {
		q.mu.Unlock()
		return item, false
	}
	item = q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head++
	if q.head == len(q.buf) {
		q.head = 0
	}
	q.mu.Unlock()
	return item, true
}

// Len returns the number of items currently queued, from one snapshot of
// both cursors under the lock. Always in [0, Cap()-1].
func (q *SyncQueue[T]) Len() int {
	q.mu.Lock()
	n := q.tail - q.head
	if n < 0 {
		n += len(q.buf)
	}
	q.mu.Unlock()
	return n
}

// Cap returns the current buffer capacity. One slot of it is always
// sacrificed to keep empty and full distinguishable.
func (q *SyncQueue[T]) Cap() int {
	q.mu.Lock()
	c := len(q.buf)
	q.mu.Unlock()
	return c
}

// Clear discards all items by replacing the buffer with a fresh one of the
// same current capacity. Growth is never undone; previous contents become
// unreachable through the queue.
func (q *SyncQueue[T]) Clear() {
	q.mu.Lock()
	q.buf = make([]T, len(q.buf))
	q.head = 0
	q.tail = 0
	q.mu.Unlock()
}

// grow doubles the buffer. Called with the lock held, exactly when tail has
// wrapped onto head, which means the oldest run is buf[tail:] and the run
// written after the wrap is buf[:tail]. Copying them in that order
// relinearizes the contents in FIFO order from index 0; a raw copy would
// keep wrap positions that mean nothing at the new capacity. When tail==0
// the first copy takes the whole buffer and the second is empty.
func (q *SyncQueue[T]) grow() {
	old := q.buf
	next := make([]T, len(old)*2)
	n := copy(next, old[q.tail:])
	copy(next[n:], old[:q.tail])
	q.head = 0
	q.tail = len(old)
	q.buf = next
}
