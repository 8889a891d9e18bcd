// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package adapters_test

import (
	"testing"

	"github.com/momentics/hioload-queue/adapters"
	"github.com/momentics/hioload-queue/queue"
)

func TestControlAdapterBasic(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	if len(ctrl.GetConfig()) != 0 {
		t.Error("expected empty config on init")
	}
	if err := ctrl.SetConfig(map[string]any{"k": 1}); err != nil {
		t.Fatal(err)
	}
	if cfg := ctrl.GetConfig(); cfg["k"] != 1 {
		t.Error("SetConfig did not apply")
	}

	called := false
	ctrl.OnReload(func() { called = true })
	if err := ctrl.SetConfig(map[string]any{"x": 2}); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("reload hook not called")
	}
}

func TestControlAdapterStats(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	ctrl.SetMetric("events.processed", uint64(9))
	ctrl.RegisterDebugProbe("answer", func() any { return 42 })

	stats := ctrl.Stats()
	if stats["events.processed"] != uint64(9) {
		t.Error("metric missing from Stats")
	}
	if stats["debug.answer"] != 42 {
		t.Error("debug probe missing from Stats")
	}
	if _, ok := stats["debug.runtime.cpus"]; !ok {
		t.Error("runtime probes not pre-registered")
	}
	if _, ok := stats["metrics.updated"]; !ok {
		t.Error("expected a metrics.updated timestamp after SetMetric")
	}
}

func TestRegisterQueueProbes(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	q := queue.NewSyncQueue[int](8)
	adapters.RegisterQueueProbes(ctrl, "ingest", q)

	q.Enqueue(1)
	q.Enqueue(2)
	if got := ctrl.Stats()["debug.ingest.len"]; got != 2 {
		t.Errorf("expected queue depth probe to report 2, got %v", got)
	}
}
