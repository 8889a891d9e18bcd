// File: dispatch/drainloop.go
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// DrainLoop is the consumer half of the producer/consumer pair SyncQueue is
// built for: a dedicated goroutine that pulls batches off a queue and hands
// each element to a Notifier. Supports adaptive idle backoff, optional CPU
// pinning, and graceful stop.

package dispatch

import (
	"log"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-queue/affinity"
	"github.com/momentics/hioload-queue/api"
)

// DefaultBatchSize bounds one drain cycle when no option overrides it.
const DefaultBatchSize = 64

// DrainLoop drains an api.Queue and dispatches every element through a
// Notifier. One loop serves one queue; Run is single-use.
type DrainLoop[T any] struct {
	source    api.Queue[T]
	sink      *Notifier[T]
	batchSize int
	pinnedCPU int

	quitCh  chan struct{} // closed on Stop()
	doneCh  chan struct{} // closed after Run() exits
	running atomic.Bool
	stopped atomic.Bool

	processed atomic.Uint64
	faults    atomic.Uint64
}

// NewDrainLoop wires source to sink. The loop does not start until Run.
func NewDrainLoop[T any](source api.Queue[T], sink *Notifier[T], opts ...Option) *DrainLoop[T] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &DrainLoop[T]{
		source:    source,
		sink:      sink,
		batchSize: s.batchSize,
		pinnedCPU: s.pinnedCPU,
		quitCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Run drains the source until Stop is called. It blocks the calling
// goroutine; start it with go. Only the first call proceeds; the loop is
// not restartable after Stop.
//
// When the queue is empty the loop sleeps on an exponential backoff timer
// (1ns up to 1ms), so an idle loop costs roughly one wakeup per
// millisecond. Any drained element resets the backoff.
func (d *DrainLoop[T]) Run() {
	if !d.running.CompareAndSwap(false, true) {
		return
	}
	defer close(d.doneCh)

	if d.pinnedCPU >= 0 {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := affinity.Pin(d.pinnedCPU); err != nil {
			log.Printf("[drainloop] CPU affinity warning: %v", err)
		}
	}

	backoffNs := int64(1)
	const maxBackoffNs = int64(1_000_000)

	// Reusable timer, initially stopped.
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}

	for {
		// A saturated queue must not starve shutdown.
		select {
		case <-d.quitCh:
			return
		default:
		}

		n := 0
		for n < d.batchSize {
			item, ok := d.source.Dequeue()
			if !ok {
				break
			}
			d.dispatch(item)
			n++
		}

		if n == 0 {
			timer.Reset(time.Duration(backoffNs) * time.Nanosecond)
			select {
			case <-d.quitCh:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				return
			case <-timer.C:
				backoffNs *= 2
				if backoffNs > maxBackoffNs {
					backoffNs = maxBackoffNs
				}
			}
		} else {
			backoffNs = 1
		}
	}
}

// dispatch hands one element to the listeners, trapping listener panics so
// a faulty observer cannot kill the loop. A panic abandons the remaining
// listeners for that element only.
func (d *DrainLoop[T]) dispatch(item T) {
	defer func() {
		if r := recover(); r != nil {
			d.faults.Add(1)
		}
	}()
	d.sink.Notify(item)
	d.processed.Add(1)
}

// Stop signals the loop to exit and waits for it to wind down. Idempotent
// and safe from any goroutine. Elements still queued stay in the source.
func (d *DrainLoop[T]) Stop() {
	if d.stopped.CompareAndSwap(false, true) {
		close(d.quitCh)
	}
	if d.running.Load() {
		<-d.doneCh
	}
}

// Pending reports how many elements wait in the source queue.
func (d *DrainLoop[T]) Pending() int { return d.source.Len() }

// Processed reports elements dispatched to every listener without a fault.
func (d *DrainLoop[T]) Processed() uint64 { return d.processed.Load() }

// Faults reports dispatches abandoned by a listener panic.
func (d *DrainLoop[T]) Faults() uint64 { return d.faults.Load() }
