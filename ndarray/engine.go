// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/random"
)

// CompareOp selects the relation computed by Compare.
type CompareOp = cpu.CompareOp

// Comparison operators.
const (
	Greater CompareOp = cpu.Greater
	Less    CompareOp = cpu.Less
	Equal   CompareOp = cpu.Equal
)

// ParseCompareOp maps '>', '<' and '=' to a CompareOp.
func ParseCompareOp(r rune) (CompareOp, error) {
	return cpu.ParseCompareOp(r)
}

// IntSource draws uniform integers in [0, n). *Source satisfies it.
type IntSource = random.IntSource

// Engine defines the operations a compute backend implements.
//
// Methods taking an out parameter write into it when it is non-nil; out must
// then already have the result shape and dtype, and may alias an input.
//
// Implementations:
//   - backend/cpu: Pure Go, row-parallel
type Engine interface {
	Name() string

	// Element-wise operations.
	Add(out, a, b *Array) (*Array, error)
	Sub(out, a, b *Array) (*Array, error)
	Compare(out, a, b *Array, op CompareOp) (*Array, error)

	// Matrix operations.
	Dot(out, a, b *Array) (*Array, error)
	Transpose(a *Array) (*Array, error)
	BroadcastAdd(out, a, b *Array) (*Array, error)

	// Shape operations.
	Concat(a, b *Array, axis int) (*Array, error)
	Slice(a *Array, axis, start, end int) (*Array, error)
	Subsample(a *Array, n int, rng IntSource) (*Array, error)

	// Reductions.
	SumAxis(a *Array, axis int, keepDim bool) (*Array, error)
	MeanAxis(a *Array, axis int, keepDim bool) (*Array, error)
	Sum(a *Array) (*Array, error)

	// Type conversion and selection.
	Cast(a *Array, dtype DataType) (*Array, error)
	Where(out, condition, x, y *Array) (*Array, error)
}

// Compile-time check that the CPU backend implements Engine.
var _ Engine = (*cpu.CPUBackend)(nil)

var defaultEngine Engine = cpu.New()

// Default returns the engine used by the package-level operations.
func Default() Engine {
	return defaultEngine
}

// Add returns a + b element-wise. a and b must have the same shape and dtype.
func Add(a, b *Array) (*Array, error) {
	return defaultEngine.Add(nil, a, b)
}

// Sub returns a - b element-wise. a and b must have the same shape and dtype.
func Sub(a, b *Array) (*Array, error) {
	return defaultEngine.Sub(nil, a, b)
}

// Compare returns a Bool array holding a <op> b element-wise.
func Compare(a, b *Array, op CompareOp) (*Array, error) {
	return defaultEngine.Compare(nil, a, b, op)
}

// Dot returns the matrix product of a [m,k] and b [k,n].
func Dot(a, b *Array) (*Array, error) {
	return defaultEngine.Dot(nil, a, b)
}

// Transpose returns the transpose of a matrix.
func Transpose(a *Array) (*Array, error) {
	return defaultEngine.Transpose(a)
}

// BroadcastAdd adds two matrices, treating cells outside either operand as zero.
// The result has shape [max rows, max cols].
func BroadcastAdd(a, b *Array) (*Array, error) {
	return defaultEngine.BroadcastAdd(nil, a, b)
}

// Concat joins a and b along axis.
func Concat(a, b *Array, axis int) (*Array, error) {
	return defaultEngine.Concat(a, b, axis)
}

// Slice copies the range [start, end) of a along axis.
func Slice(a *Array, axis, start, end int) (*Array, error) {
	return defaultEngine.Slice(a, axis, start, end)
}

// Subsample draws n distinct rows of a without replacement.
func Subsample(a *Array, n int, rng IntSource) (*Array, error) {
	return defaultEngine.Subsample(a, n, rng)
}

// SumAxis sums a along axis. Negative axes count from the last one.
// With keepDim the reduced axis is kept with extent 1.
func SumAxis(a *Array, axis int, keepDim bool) (*Array, error) {
	return defaultEngine.SumAxis(a, axis, keepDim)
}

// MeanAxis averages a float array along axis.
func MeanAxis(a *Array, axis int, keepDim bool) (*Array, error) {
	return defaultEngine.MeanAxis(a, axis, keepDim)
}

// Sum returns the total of all elements as a one-element array.
func Sum(a *Array) (*Array, error) {
	return defaultEngine.Sum(a)
}

// Cast returns a copy of a converted to dtype.
func Cast(a *Array, dtype DataType) (*Array, error) {
	return defaultEngine.Cast(a, dtype)
}

// Where selects x where condition is true and y elsewhere.
func Where(condition, x, y *Array) (*Array, error) {
	return defaultEngine.Where(nil, condition, x, y)
}
