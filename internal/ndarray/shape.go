package ndarray

import (
	"math/bits"
	"strconv"
	"strings"
)

// Shape represents the extents of an array, outermost axis first.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// A shape with a zero extent has zero elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one axis and no negative extent.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return Errorf("shape", ErrRank, "rank must be >= 1")
	}
	for i, dim := range s {
		if dim < 0 {
			return Errorf("shape", ErrShapeMismatch, "invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ElementStrides calculates row-major strides counted in elements.
// stride[i] = product of all dimensions after i.
func (s Shape) ElementStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// ByteStrides calculates row-major strides counted in bytes for elements of
// elemSize bytes.
func (s Shape) ByteStrides(elemSize int) []int {
	strides := s.ElementStrides()
	for i := range strides {
		strides[i] *= elemSize
	}
	return strides
}

// String renders the shape as a tuple, e.g. "(2,3,4)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, dim := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteByte(')')
	return b.String()
}

// byteSize returns NumElements*elemSize, or false on overflow.
func (s Shape) byteSize(elemSize int) (int, bool) {
	n := uint64(elemSize)
	for _, dim := range s {
		hi, lo := bits.Mul64(n, uint64(dim))
		if hi != 0 || lo > MaxByteSize {
			return 0, false
		}
		n = lo
	}
	return int(n), true
}
