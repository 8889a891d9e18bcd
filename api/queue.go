// File: api/queue.go
// Package api defines the FIFO queue contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Queue is the FIFO contract shared by every queue implementation in this
// library. Elements come out in the order they went in.
//
// Bounded implementations report a rejected insert by returning false from
// Enqueue; unbounded implementations grow instead and always return true.
// An empty queue is a normal steady state, signalled by ok==false from
// Dequeue, never by an error.
type Queue[T any] interface {
	// Enqueue adds an item, returns false only if the implementation is
	// bounded and full.
	Enqueue(item T) bool
	// Dequeue removes the oldest item; ok==false if empty.
	Dequeue() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Clear discards all items.
	Clear()
}
