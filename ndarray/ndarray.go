// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Type aliases for public API

// Element is a constraint for Go types that back a DataType.
type Element = ndarray.Element

// DataType tags the element type of an array.
type DataType = ndarray.DataType

// Data type constants.
const (
	Float64 DataType = ndarray.Float64
	Float32 DataType = ndarray.Float32
	Uint64  DataType = ndarray.Uint64
	Bool    DataType = ndarray.Bool
)

// Shape represents the extents of an array, outermost axis first.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// Array is a typed, strided, row-major N-dimensional array.
type Array = ndarray.Array

// OpError describes a failed operation; it unwraps to one of the Err* sentinels.
type OpError = ndarray.OpError

// Error sentinels.
var (
	ErrAllocation       = ndarray.ErrAllocation
	ErrShapeMismatch    = ndarray.ErrShapeMismatch
	ErrDtypeMismatch    = ndarray.ErrDtypeMismatch
	ErrAxisOutOfRange   = ndarray.ErrAxisOutOfRange
	ErrIndexOutOfRange  = ndarray.ErrIndexOutOfRange
	ErrUnsupportedDtype = ndarray.ErrUnsupportedDtype
	ErrInvalidOperator  = ndarray.ErrInvalidOperator
	ErrRank             = ndarray.ErrRank
	ErrSampleSize       = ndarray.ErrSampleSize
	ErrIO               = ndarray.ErrIO
	ErrParse            = ndarray.ErrParse
	ErrReleased         = ndarray.ErrReleased
)

// MaxByteSize is the largest buffer New will allocate.
const MaxByteSize = ndarray.MaxByteSize

// ElementSize returns the byte width of one element of dtype.
func ElementSize(dtype DataType) int {
	return ndarray.ElementSize(dtype)
}

// ParseDataType parses "float64", "float32", "uint64", "bool" or the single
// character tags 'd', 'f', 'i', 'b'.
func ParseDataType(s string) (DataType, error) {
	return ndarray.ParseDataType(s)
}

// New creates an array of the given shape and dtype.
//
// Example:
//
//	a, err := ndarray.New(ndarray.Shape{2, 3}, ndarray.Float64)
func New(shape Shape, dtype DataType) (*Array, error) {
	return ndarray.New(shape, dtype)
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	return ndarray.Zeros(shape, dtype)
}

// Full creates an array with every element set to value.
func Full[T Element](shape Shape, value T) (*Array, error) {
	return ndarray.Full(shape, value)
}

// FromSlice creates an array holding a copy of data.
func FromSlice[T Element](data []T, shape Shape) (*Array, error) {
	return ndarray.FromSlice(data, shape)
}

// Values returns a copy of the array's elements in row-major order.
func Values[T Element](a *Array) ([]T, error) {
	return ndarray.Values[T](a)
}

// Get returns the element at idx.
func Get[T Element](a *Array, idx ...int) (T, error) {
	return ndarray.Get[T](a, idx...)
}

// Set writes v at idx.
func Set[T Element](a *Array, v T, idx ...int) error {
	return ndarray.Set(a, v, idx...)
}
