// File: facade/hioload.go
// Unified facade layer for the hioload-queue library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the HioloadQ struct, which aggregates the core
// components behind a single facade: the growable synchronized queue, the
// listener notifier, the drain loop that connects them, and the control
// plane. The facade exposes methods to start/stop the pipeline, submit
// elements, manage listeners, and retrieve the Control interface.

package facade

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-queue/adapters"
	"github.com/momentics/hioload-queue/api"
	"github.com/momentics/hioload-queue/control"
	"github.com/momentics/hioload-queue/dispatch"
	"github.com/momentics/hioload-queue/queue"
)

// Config holds parameters immutable per run.
// Runtime-tunable state lives behind the Control interface instead.
type Config struct {
	InitialCapacity int    // Slot count of the queue buffer before any growth
	BatchSize       int    // Elements per drain cycle
	PinnedCPU       int    // CPU to pin the drain loop to; negative leaves it unpinned
	EnableDebug     bool   // Whether to register queue and loop debug probes
	ConfigFile      string // Optional JSON file watched for hot-reload; empty disables
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		InitialCapacity: queue.DefaultInitialCap,
		BatchSize:       dispatch.DefaultBatchSize,
		PinnedCPU:       -1,
		EnableDebug:     true,
		ConfigFile:      "",
	}
}

// HioloadQ wires a SyncQueue to listeners through a DrainLoop and exposes
// the pair through one lifecycle.
type HioloadQ[T any] struct {
	queue    *queue.SyncQueue[T]
	notifier *dispatch.Notifier[T]
	loop     *dispatch.DrainLoop[T]
	control  *adapters.ControlAdapter
	watcher  *control.Watcher

	config  *Config
	mu      sync.RWMutex // protects started flag
	started bool
}

var _ api.Lifecycle = (*HioloadQ[any])(nil)

// New constructs a HioloadQ with the given configuration. A nil cfg uses
// DefaultConfig. When cfg.ConfigFile is set the file is loaded into the
// control plane immediately; watching begins at Start.
func New[T any](cfg *Config) (*HioloadQ[T], error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	h := &HioloadQ[T]{config: cfg}

	h.control = adapters.NewControlAdapter()
	h.queue = queue.NewSyncQueue[T](cfg.InitialCapacity)
	h.notifier = dispatch.NewNotifier[T]()
	h.loop = dispatch.NewDrainLoop[T](h.queue, h.notifier,
		dispatch.WithBatchSize(cfg.BatchSize),
		dispatch.WithPinnedCPU(cfg.PinnedCPU),
	)

	if cfg.ConfigFile != "" {
		if err := control.LoadFileInto(h.control.ConfigStore(), cfg.ConfigFile); err != nil {
			return nil, fmt.Errorf("facade: config file: %w", err)
		}
	}

	// Expose construction-time settings via Control for observability.
	h.control.SetConfig(map[string]any{
		"initial_capacity": cfg.InitialCapacity,
		"batch_size":       cfg.BatchSize,
		"pinned_cpu":       cfg.PinnedCPU,
	})

	if cfg.EnableDebug {
		adapters.RegisterQueueProbes(h.control, "queue", h.queue)
		h.control.RegisterDebugProbe("queue.cap", func() any { return h.queue.Cap() })
		h.control.RegisterDebugProbe("loop.pending", func() any { return h.loop.Pending() })
		h.control.RegisterDebugProbe("loop.processed", func() any { return h.loop.Processed() })
		h.control.RegisterDebugProbe("loop.faults", func() any { return h.loop.Faults() })
	}

	return h, nil
}

// Start launches the drain loop and, when configured, the config file
// watcher. Subsequent calls have no effect.
func (h *HioloadQ[T]) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started {
		return nil
	}
	if h.config.ConfigFile != "" {
		w, err := control.NewWatcher(h.config.ConfigFile, h.control.ConfigStore())
		if err != nil {
			return fmt.Errorf("facade: config watcher: %w", err)
		}
		h.watcher = w
	}
	go h.loop.Run()
	h.started = true
	return nil
}

// Stop winds down the drain loop and the watcher. Elements still queued
// stay in the queue; a later drain can pick them up through Queue().
// Calling Stop on a non-started facade is a no-op. The facade is
// single-use: a stopped facade does not restart.
func (h *HioloadQ[T]) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.started {
		return nil
	}
	h.loop.Stop()
	if h.watcher != nil {
		h.watcher.Stop()
		h.watcher = nil
	}
	h.started = false
	return nil
}

// Submit enqueues one element for dispatch. Always true: the queue grows
// instead of rejecting.
func (h *HioloadQ[T]) Submit(item T) bool {
	return h.queue.Enqueue(item)
}

// AddListener registers l for every subsequently dispatched element.
func (h *HioloadQ[T]) AddListener(l api.Listener[T]) {
	h.notifier.Register(l)
}

// RemoveListener drops every registration of l.
func (h *HioloadQ[T]) RemoveListener(l api.Listener[T]) {
	h.notifier.Unregister(l)
}

// Control returns the control plane for config, metrics, and probes.
func (h *HioloadQ[T]) Control() api.Control {
	return h.control
}

// Queue exposes the underlying queue for direct draining or inspection.
func (h *HioloadQ[T]) Queue() *queue.SyncQueue[T] {
	return h.queue
}
