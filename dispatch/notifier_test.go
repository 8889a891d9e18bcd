// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package dispatch

import (
	"sync"
	"testing"

	"github.com/momentics/hioload-queue/api"
)

type recordListener struct {
	mu  sync.Mutex
	got []int
}

func (r *recordListener) OnEvent(ev int) {
	r.mu.Lock()
	r.got = append(r.got, ev)
	r.mu.Unlock()
}

func (r *recordListener) values() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.got))
	copy(out, r.got)
	return out
}

func TestNotifier_RegistrationOrder(t *testing.T) {
	n := NewNotifier[int]()
	var order []string
	n.Register(api.ListenerFunc[int](func(ev int) { order = append(order, "first") }))
	n.Register(api.ListenerFunc[int](func(ev int) { order = append(order, "second") }))

	n.Notify(1)
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected listeners to fire in registration order, got %v", order)
	}
}

func TestNotifier_DuplicateRegistration(t *testing.T) {
	n := NewNotifier[int]()
	l := &recordListener{}
	n.Register(l)
	n.Register(l)

	n.Notify(7)
	if got := l.values(); len(got) != 2 {
		t.Errorf("expected a doubly-registered listener to fire twice, got %d calls", len(got))
	}
}

func TestNotifier_Unregister(t *testing.T) {
	n := NewNotifier[int]()
	keep := &recordListener{}
	gone := &recordListener{}
	n.Register(keep)
	n.Register(gone)
	n.Register(gone)

	n.Unregister(gone)
	if got := len(n.Listeners()); got != 1 {
		t.Fatalf("expected 1 listener after Unregister, got %d", got)
	}
	n.Notify(3)
	if got := keep.values(); len(got) != 1 || got[0] != 3 {
		t.Errorf("kept listener missed the event: %v", got)
	}
	if got := gone.values(); len(got) != 0 {
		t.Errorf("removed listener still fired: %v", got)
	}

	// Removing a listener that was never registered is a no-op.
	n.Unregister(&recordListener{})
	if got := len(n.Listeners()); got != 1 {
		t.Errorf("expected 1 listener after stray Unregister, got %d", got)
	}
}

func TestNotifier_ListenersReturnsCopy(t *testing.T) {
	n := NewNotifier[int]()
	l := &recordListener{}
	n.Register(l)

	snapshot := n.Listeners()
	snapshot[0] = nil
	if got := n.Listeners(); len(got) != 1 || got[0] != api.Listener[int](l) {
		t.Error("mutating the returned slice must not touch the registry")
	}
}

func TestNotifier_PanicPropagates(t *testing.T) {
	n := NewNotifier[int]()
	after := &recordListener{}
	n.Register(api.ListenerFunc[int](func(ev int) { panic("listener failure") }))
	n.Register(after)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the listener panic to reach the caller")
			}
		}()
		n.Notify(1)
	}()

	if got := after.values(); len(got) != 0 {
		t.Errorf("listeners after the panicking one must not fire, got %v", got)
	}
}

// Registration racing Notify must never corrupt the snapshot.
func TestNotifier_ConcurrentRegisterNotify(t *testing.T) {
	n := NewNotifier[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				n.Register(&recordListener{})
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				n.Notify(j)
			}
		}()
	}
	wg.Wait()
	if got := len(n.Listeners()); got != 8*200 {
		t.Errorf("expected %d listeners, got %d", 8*200, got)
	}
}
