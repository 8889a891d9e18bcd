// Package queue
// Author: momentics <momentics@gmail.com>
//
// FIFO queue implementations behind the api.Queue contract.
//
// SyncQueue is the primary structure: a mutex-guarded, unbounded circular
// buffer that allocates only when it grows, built for workloads that enqueue
// and dequeue far more often than they resize. BoxQueue and ChanQueue are the
// baselines it is measured against: the general-purpose growable FIFO the
// ecosystem reaches for, and the plain buffered channel.
package queue
