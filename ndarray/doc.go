// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides typed, strided, row-major N-dimensional arrays and
// the numeric operations defined on them.
//
// # Overview
//
// An [Array] owns a contiguous byte buffer interpreted as elements of one
// [DataType]. Strides are byte distances, fixed at construction. Supported
// element types are float64, float32 and uint64 for arithmetic, plus bool for
// comparison results.
//
// Operations never panic on bad input: every one validates shapes, dtypes and
// axes first and returns an error wrapping one of the Err* sentinels, which
// callers test with errors.Is.
//
// # Basic Usage
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
//	b, _ := ndarray.FromSlice([]float64{5, 6, 7, 8}, ndarray.Shape{2, 2})
//
//	sum, err := ndarray.Add(a, b)       // [[6 8] [10 12]]
//	prod, err := ndarray.Dot(a, b)      // [[19 22] [43 50]]
//	both, err := ndarray.Concat(a, b, 0) // shape (4,2)
//
// The package-level operations run on a shared CPU engine. Use backend/cpu to
// create an engine with a custom parallelism configuration, or to write into
// preallocated outputs.
//
// # Reductions and Selection
//
// [SumAxis], [MeanAxis] and [Sum] reduce along an axis or over everything.
// [Cast] converts between dtypes, and [Where] picks from two arrays by a Bool
// mask, typically one produced by [Compare]:
//
//	mask, _ := ndarray.Compare(a, b, ndarray.Greater)
//	larger, err := ndarray.Where(mask, a, b)
//	cols, err := ndarray.MeanAxis(larger, 0, false)
//
// # Randomness
//
// Random generators take an explicit [Source]; nothing reads process-wide
// random state, so a fixed seed reproduces every result:
//
//	src := ndarray.NewSource(42)
//	x, err := ndarray.Normal(100, 3, 0, 1, ndarray.Float64, src)
//	sample, err := ndarray.Subsample(x, 10, src)
//
// # Persistence
//
// [LoadCSV] and [SaveCSV] exchange matrices as delimited text. [SaveArchive]
// and [OpenArchive] store named arrays in the binary .nda format, which is
// memory-mapped on open.
package ndarray
