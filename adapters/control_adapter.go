// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control on top of the control package
// primitives, plus probe helpers for queue instances.

package adapters

import (
	"github.com/momentics/hioload-queue/api"
	"github.com/momentics/hioload-queue/control"
)

// ControlAdapter aggregates a config store, a metrics registry, and a
// debug probe registry behind the api.Control surface.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

var _ api.Control = (*ControlAdapter)(nil)

// NewControlAdapter builds an adapter with runtime probes pre-registered.
func NewControlAdapter() *ControlAdapter {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterRuntimeProbes(adapter.debug)
	return adapter
}

// GetConfig returns a snapshot of the current configuration.
func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

// SetConfig merges cfg into the store and notifies reload listeners.
func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges the metrics registry with every debug probe, the probes
// prefixed "debug.".
func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any, len(stats)+len(debugStats)+1)
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	if u := c.metrics.Updated(); !u.IsZero() {
		combined["metrics.updated"] = u
	}
	return combined
}

// OnReload registers fn with this adapter's store and the global hooks.
func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
	control.RegisterReloadHook(fn)
}

// SetMetric records a metric value.
func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

// RegisterDebugProbe exposes a named inspection hook through Stats.
func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// ConfigStore exposes the underlying store for file watchers.
func (c *ControlAdapter) ConfigStore() *control.ConfigStore {
	return c.config
}

// QueueProbe is the minimal surface a queue exposes to the control plane.
type QueueProbe interface {
	Len() int
}

// RegisterQueueProbes publishes depth introspection for q under name.
func RegisterQueueProbes(c api.Control, name string, q QueueProbe) {
	c.RegisterDebugProbe(name+".len", func() any { return q.Len() })
}
