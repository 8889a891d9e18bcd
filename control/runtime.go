// control/runtime.go
// Author: momentics <momentics@gmail.com>
//
// Process-level debug probes shared by every platform.

package control

import (
	"runtime"
)

// RegisterRuntimeProbes wires Go runtime introspection into a probe registry.
func RegisterRuntimeProbes(dp *DebugProbes) {
	dp.RegisterProbe("runtime.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("runtime.goroutines", func() any {
		return runtime.NumGoroutine()
	})
	dp.RegisterProbe("runtime.heap_bytes", func() any {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return ms.HeapAlloc
	})
}
