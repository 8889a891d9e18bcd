// File: dispatch/options.go
// Functional options for DrainLoop construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package dispatch

// settings collects the tunables shared by every DrainLoop instantiation.
type settings struct {
	batchSize int
	pinnedCPU int
}

func defaultSettings() settings {
	return settings{
		batchSize: DefaultBatchSize,
		pinnedCPU: -1,
	}
}

// Option customizes DrainLoop initialization.
type Option func(*settings)

// WithBatchSize caps how many elements one drain cycle dequeues before the
// loop re-checks for shutdown. Values below 1 keep the default.
func WithBatchSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithPinnedCPU locks the loop goroutine to an OS thread bound to the given
// CPU. Negative means unpinned (the default). Pinning is best effort; on
// platforms without affinity support the loop runs unpinned.
func WithPinnedCPU(cpu int) Option {
	return func(s *settings) {
		s.pinnedCPU = cpu
	}
}
