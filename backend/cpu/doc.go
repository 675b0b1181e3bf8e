// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for array operations.
//
// # Overview
//
// This package implements the ndarray.Engine interface with:
//   - Pure Go implementation (no CGO)
//   - Float64, Float32 and Uint64 arithmetic, Bool comparison results
//   - Row-parallel elementwise kernels and matrix product
//   - Output reuse through the out parameter
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndarray/backend/cpu"
//	    "github.com/born-ml/ndarray/ndarray"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
//	    out, _ := ndarray.New(ndarray.Shape{2, 2}, ndarray.Float64)
//
//	    // Results land in out; no allocation per call.
//	    backend.Dot(out, a, a)
//	}
//
// # Parallelism
//
// Every output element is computed by exactly one goroutine in a fixed order,
// so results are identical for any worker count. Use Sequential for a
// single-goroutine backend:
//
//	backend := cpu.NewWithConfig(cpu.Sequential())
package cpu
