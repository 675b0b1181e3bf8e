package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Transpose returns a new matrix with result[j,i] == a[i,j].
// Only 2D arrays are supported.
func (cpu *CPUBackend) Transpose(a *ndarray.Array) (*ndarray.Array, error) {
	if err := checkLive("transpose", a); err != nil {
		return nil, err
	}
	if err := checkRank2("transpose", a); err != nil {
		return nil, err
	}
	if err := checkCopyable("transpose", a.DType()); err != nil {
		return nil, err
	}

	rows, cols := a.Dim(0), a.Dim(1)
	result, err := ndarray.New(ndarray.Shape{cols, rows}, a.DType())
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case ndarray.Float64:
		transposeKernel(result.AsFloat64(), a.AsFloat64(), rows, cols)
	case ndarray.Float32:
		transposeKernel(result.AsFloat32(), a.AsFloat32(), rows, cols)
	case ndarray.Uint64:
		transposeKernel(result.AsUint64(), a.AsUint64(), rows, cols)
	case ndarray.Bool:
		transposeKernel(result.AsBool(), a.AsBool(), rows, cols)
	}

	return result, nil
}

func transposeKernel[T any](dst, src []T, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
}

// Concat joins a and b along axis.
//
// Both arrays must have the same rank and dtype, and equal extents on every
// axis except axis. The output extent along axis is the sum of both inputs.
// Any rank is supported.
//
// Example:
//
//	a: [2, 3], b: [2, 5]
//	c, err := backend.Concat(a, b, 1) // Shape: [2, 8]
func (cpu *CPUBackend) Concat(a, b *ndarray.Array, axis int) (*ndarray.Array, error) {
	if err := checkLive("concat", a, b); err != nil {
		return nil, err
	}
	rank := a.Rank()
	if b.Rank() != rank {
		return nil, ndarray.Errorf("concat", ndarray.ErrShapeMismatch, "rank %d vs %d", rank, b.Rank())
	}
	if axis < 0 || axis >= rank {
		return nil, ndarray.Errorf("concat", ndarray.ErrAxisOutOfRange, "axis %d for %dD arrays", axis, rank)
	}
	if err := checkSameDtype("concat", a, b); err != nil {
		return nil, err
	}
	for d := 0; d < rank; d++ {
		if d != axis && a.Dim(d) != b.Dim(d) {
			return nil, ndarray.Errorf("concat", ndarray.ErrShapeMismatch,
				"axis %d is %d vs %d (concatenating along axis %d)", d, a.Dim(d), b.Dim(d), axis)
		}
	}
	if err := checkCopyable("concat", a.DType()); err != nil {
		return nil, err
	}

	outShape := a.Shape()
	outShape[axis] += b.Dim(axis)

	result, err := ndarray.New(outShape, a.DType())
	if err != nil {
		return nil, err
	}

	plan := concatPlan{
		axis:     axis,
		split:    a.Dim(axis),
		outShape: outShape,
		aStrides: a.ElementStrides(),
		bStrides: b.ElementStrides(),
	}

	switch a.DType() {
	case ndarray.Float64:
		concatKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), plan)
	case ndarray.Float32:
		concatKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), plan)
	case ndarray.Uint64:
		concatKernel(result.AsUint64(), a.AsUint64(), b.AsUint64(), plan)
	case ndarray.Bool:
		concatKernel(result.AsBool(), a.AsBool(), b.AsBool(), plan)
	}

	return result, nil
}

// concatPlan carries the element-count strides used to route output elements.
// Strides are in elements, never bytes, so the routing is independent of the
// element size.
type concatPlan struct {
	axis     int
	split    int // a's extent along axis
	outShape ndarray.Shape
	aStrides []int
	bStrides []int
}

// concatKernel decomposes every linear output index into a multi-index using
// the output's element strides, routes it to a or b by the axis coordinate,
// and copies one element.
func concatKernel[T any](dst, a, b []T, p concatPlan) {
	outStrides := p.outShape.ElementStrides()
	idx := make([]int, len(p.outShape))

	for linear := range dst {
		rem := linear
		for i, s := range outStrides {
			idx[i] = rem / s
			rem %= s
		}

		src, srcStrides, coord := a, p.aStrides, idx[p.axis]
		if coord >= p.split {
			src, srcStrides, coord = b, p.bStrides, coord-p.split
		}

		srcIdx := 0
		for i, s := range srcStrides {
			if i == p.axis {
				srcIdx += coord * s
			} else {
				srcIdx += idx[i] * s
			}
		}
		dst[linear] = src[srcIdx]
	}
}

// Slice copies the sub-range [start, end) of a along axis into a new array.
func (cpu *CPUBackend) Slice(a *ndarray.Array, axis, start, end int) (*ndarray.Array, error) {
	if err := checkLive("slice", a); err != nil {
		return nil, err
	}
	if axis < 0 || axis >= a.Rank() {
		return nil, ndarray.Errorf("slice", ndarray.ErrAxisOutOfRange, "axis %d for %dD array", axis, a.Rank())
	}
	if start < 0 || end < start || end > a.Dim(axis) {
		return nil, ndarray.Errorf("slice", ndarray.ErrIndexOutOfRange,
			"range [%d, %d) for axis %d of size %d", start, end, axis, a.Dim(axis))
	}
	if err := checkCopyable("slice", a.DType()); err != nil {
		return nil, err
	}

	outShape := a.Shape()
	outShape[axis] = end - start
	result, err := ndarray.New(outShape, a.DType())
	if err != nil {
		return nil, err
	}

	// Each outer block along axis is contiguous in row-major layout.
	stride := a.Strides()[axis]
	outer := ndarray.Shape(a.Shape()[:axis]).NumElements()
	blockIn := a.Dim(axis) * stride
	blockOut := (end - start) * stride
	src, dst := a.Data(), result.Data()
	for o := 0; o < outer; o++ {
		from := o*blockIn + start*stride
		copy(dst[o*blockOut:(o+1)*blockOut], src[from:from+blockOut])
	}

	return result, nil
}
