// File: api/control.go
// Package api defines the Control interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control is the runtime control surface: dynamic configuration, metrics
// snapshots, reload hooks, and debug probes. The queue and dispatch layers
// stay free of it; wiring happens in adapters and the facade.
type Control interface {
	// GetConfig returns a snapshot of the current configuration.
	GetConfig() map[string]any
	// SetConfig merges cfg into the current configuration and notifies
	// reload listeners.
	SetConfig(cfg map[string]any) error
	// Stats returns a merged snapshot of metrics and debug probe output.
	Stats() map[string]any
	// OnReload registers fn to run after each configuration change.
	OnReload(fn func())
	// RegisterDebugProbe exposes fn under name in Stats output.
	RegisterDebugProbe(name string, fn func() any)
}
