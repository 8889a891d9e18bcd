// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_windows.go, ...)
// guarded by build tags.

package affinity

import "errors"

// ErrNotSupported is returned by Pin on platforms without a thread
// affinity facility.
var ErrNotSupported = errors.New("affinity: not supported on this platform")

// Pin binds the calling OS thread to the given logical CPU. Callers must
// hold the thread first (runtime.LockOSThread), otherwise the scheduler
// may move the goroutine off the pinned thread.
func Pin(cpuID int) error {
	if cpuID < 0 {
		return errors.New("affinity: negative CPU id")
	}
	return setAffinityPlatform(cpuID)
}
