package ndarray

import (
	"fmt"
	"unsafe"
)

// MaxByteSize is the largest buffer New will allocate.
const MaxByteSize = 1 << 40

// Array is a typed, strided, row-major N-dimensional array.
//
// The byte buffer is owned exclusively by the Array. Strides are derived from
// the shape and dtype at construction and never change afterwards; element
// writes only touch the buffer. An Array is not safe for concurrent mutation.
type Array struct {
	data     []byte
	shape    Shape
	strides  []int // Byte strides (row-major)
	dtype    DataType
	released bool
}

// New creates an Array with the given shape and data type.
//
// The buffer is allocated by the Go runtime and therefore zero-filled, but
// callers must not rely on its contents before writing.
func New(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	elemSize := ElementSize(dtype)
	byteSize, ok := shape.byteSize(elemSize)
	if !ok {
		return nil, Errorf("create", ErrAllocation, "shape %v of %s exceeds %d bytes", shape, dtype, MaxByteSize)
	}

	return &Array{
		data:    make([]byte, byteSize),
		shape:   shape.Clone(),
		strides: shape.ByteStrides(elemSize),
		dtype:   dtype,
	}, nil
}

// Release frees the buffer, shape and strides together.
// Releasing twice is a no-op.
func (a *Array) Release() {
	a.data = nil
	a.shape = nil
	a.strides = nil
	a.released = true
}

// Released reports whether Release has been called.
func (a *Array) Released() bool {
	return a.released
}

// Check returns ErrReleased for a released array and nil otherwise.
func (a *Array) Check(op string) error {
	if a == nil {
		return Errorf(op, ErrReleased, "nil array")
	}
	if a.released {
		return Errorf(op, ErrReleased, "")
	}
	return nil
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Dim returns the extent of axis i.
func (a *Array) Dim(i int) int {
	return a.shape[i]
}

// Strides returns a copy of the byte strides.
func (a *Array) Strides() []int {
	return append([]int(nil), a.strides...)
}

// ElementStrides returns the strides counted in elements.
func (a *Array) ElementStrides() []int {
	return a.shape.ElementStrides()
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// DType returns the array's data type.
func (a *Array) DType() DataType {
	return a.dtype
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	if a.released {
		return 0
	}
	return a.shape.NumElements()
}

// ByteSize returns the total buffer size in bytes.
func (a *Array) ByteSize() int {
	return len(a.data)
}

// Data returns the raw byte buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (a *Array) Data() []byte {
	return a.data
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float64.
func (a *Array) AsFloat64() []float64 {
	if a.dtype != Float64 {
		panic(fmt.Sprintf("array dtype is %s, not float64", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the buffer
	return unsafe.Slice((*float64)(unsafe.Pointer(&a.data[0])), len(a.data)/8)
}

// AsFloat32 interprets the data as []float32.
// Panics if the array's dtype is not Float32.
func (a *Array) AsFloat32() []float32 {
	if a.dtype != Float32 {
		panic(fmt.Sprintf("array dtype is %s, not float32", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the buffer
	return unsafe.Slice((*float32)(unsafe.Pointer(&a.data[0])), len(a.data)/4)
}

// AsUint64 interprets the data as []uint64.
// Panics if the array's dtype is not Uint64.
func (a *Array) AsUint64() []uint64 {
	if a.dtype != Uint64 {
		panic(fmt.Sprintf("array dtype is %s, not uint64", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the buffer
	return unsafe.Slice((*uint64)(unsafe.Pointer(&a.data[0])), len(a.data)/8)
}

// AsBool interprets the data as []bool.
// Panics if the array's dtype is not Bool.
func (a *Array) AsBool() []bool {
	if a.dtype != Bool {
		panic(fmt.Sprintf("array dtype is %s, not bool", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the buffer
	return unsafe.Slice((*bool)(unsafe.Pointer(&a.data[0])), len(a.data))
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]byte, len(a.data))
	copy(data, a.data)
	return &Array{
		data:     data,
		shape:    a.shape.Clone(),
		strides:  append([]int(nil), a.strides...),
		dtype:    a.dtype,
		released: a.released,
	}
}

// Equal reports whether both arrays have the same dtype, shape and bytes.
func (a *Array) Equal(other *Array) bool {
	if a.dtype != other.dtype || !a.shape.Equal(other.shape) {
		return false
	}
	return string(a.data) == string(other.data)
}
