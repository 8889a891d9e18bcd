//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows implementation via SetThreadAffinityMask on the current thread.

package affinity

import (
	"fmt"
	"syscall"
)

// setAffinityPlatform binds the calling thread to cpuID. The affinity mask
// is a single machine word, so only CPUs 0..63 are addressable.
func setAffinityPlatform(cpuID int) error {
	if cpuID > 63 {
		return fmt.Errorf("affinity: cpu %d beyond mask width", cpuID)
	}
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	procSetThreadAffinityMask := kernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread := kernel32.NewProc("GetCurrentThread")
	hThread, _, _ := procGetCurrentThread.Call()
	mask := uintptr(1) << cpuID
	ret, _, err := procSetThreadAffinityMask.Call(hThread, mask)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask cpu %d: %w", cpuID, err)
	}
	return nil
}
