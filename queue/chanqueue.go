// File: queue/chanqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package queue

import "github.com/momentics/hioload-queue/api"

var _ api.Queue[any] = (*ChanQueue[any])(nil)

// ChanQueue adapts a buffered channel to the Queue contract. It is the
// standard-library baseline: bounded, so Enqueue reports false when the
// buffer is full instead of growing. Every operation is a non-blocking
// channel operation.
type ChanQueue[T any] struct {
	ch chan T
}

// NewChanQueue creates a ChanQueue with the given buffer capacity.
// Non-positive capacity falls back to DefaultInitialCap.
func NewChanQueue[T any](capacity int) *ChanQueue[T] {
	if capacity <= 0 {
		capacity = DefaultInitialCap
	}
	return &ChanQueue[T]{ch: make(chan T, capacity)}
}

// Enqueue adds item; returns false if the buffer is full.
func (c *ChanQueue[T]) Enqueue(item T) bool {
	select {
	case c.ch <- item:
		return true
	default:
		return false
	}
}

// Dequeue removes the oldest item; ok is false when empty.
func (c *ChanQueue[T]) Dequeue() (item T, ok bool) {
	select {
	case item = <-c.ch:
		return item, true
	default:
		return item, false
	}
}

// Len returns the number of buffered items.
func (c *ChanQueue[T]) Len() int { return len(c.ch) }

// Cap returns the fixed buffer capacity.
func (c *ChanQueue[T]) Cap() int { return cap(c.ch) }

// Clear drains the buffer. Concurrent enqueuers may land items after the
// drain observes empty; Clear only guarantees that everything buffered
// before the call is gone.
func (c *ChanQueue[T]) Clear() {
	for {
		select {
		case <-c.ch:
		default:
			return
		}
	}
}
