// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/ndarray"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all array operations,
// splitting large outputs across goroutines by rows.
type Backend = internalcpu.CPUBackend

// Config controls CPU backend execution.
type Config = internalcpu.Config

// ParallelConfig controls how work is split across goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements ndarray.Engine.
var _ ndarray.Engine = (*Backend)(nil)

// New creates a new CPU backend with the default configuration.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndarray/backend/cpu"
//	    "github.com/born-ml/ndarray/ndarray"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := ndarray.Zeros(ndarray.Shape{2, 3}, ndarray.Float64)
//	    sum, err := backend.Add(nil, a, a)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with a custom configuration.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the default configuration: parallel execution across
// all CPUs for outputs large enough to amortize goroutine startup.
func DefaultConfig() Config {
	return internalcpu.DefaultConfig()
}

// Sequential returns a configuration that never spawns goroutines.
func Sequential() Config {
	return Config{Parallel: parallel.Sequential()}
}
