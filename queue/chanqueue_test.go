// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package queue

import "testing"

func TestChanQueue_FIFO(t *testing.T) {
	q := NewChanQueue[int](8)
	if _, ok := q.Dequeue(); ok {
		t.Error("expected ok=false on fresh queue")
	}
	for i := 0; i < 5; i++ {
		if !q.Enqueue(i) {
			t.Fatalf("Enqueue(%d) returned false below capacity", i)
		}
	}
	if n := q.Len(); n != 5 {
		t.Errorf("expected Len()=5, got %d", n)
	}
	for i := 0; i < 5; i++ {
		got, ok := q.Dequeue()
		if !ok || got != i {
			t.Errorf("expected (%d,true), got (%d,%v)", i, got, ok)
		}
	}
}

// Unlike SyncQueue the channel variant is bounded: Enqueue reports
// rejection instead of growing.
func TestChanQueue_Bounded(t *testing.T) {
	q := NewChanQueue[int](2)
	if c := q.Cap(); c != 2 {
		t.Fatalf("expected Cap()=2, got %d", c)
	}
	if !q.Enqueue(1) || !q.Enqueue(2) {
		t.Fatal("Enqueue rejected below capacity")
	}
	if q.Enqueue(3) {
		t.Error("expected Enqueue to return false at capacity")
	}
	if got, ok := q.Dequeue(); !ok || got != 1 {
		t.Fatalf("expected (1,true), got (%d,%v)", got, ok)
	}
	if !q.Enqueue(3) {
		t.Error("expected Enqueue to succeed after a slot freed up")
	}
}

func TestChanQueue_Clear(t *testing.T) {
	q := NewChanQueue[int](4)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()
	if n := q.Len(); n != 0 {
		t.Errorf("expected Len()=0 after Clear, got %d", n)
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("expected ok=false after Clear")
	}
	if !q.Enqueue(9) {
		t.Error("expected Enqueue to succeed after Clear")
	}
}

func TestChanQueue_DefaultCapacity(t *testing.T) {
	if c := NewChanQueue[int](0).Cap(); c != DefaultInitialCap {
		t.Errorf("expected default capacity %d, got %d", DefaultInitialCap, c)
	}
}
