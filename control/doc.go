// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics, and debug introspection layer for the
// queue components.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads, merged updates, and reload observers
//   - A JSON file source and an OS-notification file watcher
//   - Metrics telemetry registry
//   - Debug hooks and probe registration
package control
