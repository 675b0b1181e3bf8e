package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// SumAxis sums elements along axis.
//
// Parameters:
//   - axis: axis to reduce (supports negative indexing: -1 = last axis)
//   - keepDim: if true, keep the reduced axis with size 1; if false, remove it
//
// Reducing the only axis of a 1D array without keepDim yields shape [1].
// Float inputs accumulate in float64; uint64 sums wrap modulo 2^64.
//
// Example:
//
//	x: [2, 3, 4]
//	y, err := backend.SumAxis(x, -1, true)  // shape: [2, 3, 1]
//	z, err := backend.SumAxis(x, -1, false) // shape: [2, 3]
func (cpu *CPUBackend) SumAxis(a *ndarray.Array, axis int, keepDim bool) (*ndarray.Array, error) {
	return cpu.reduceAxis("sum", a, axis, keepDim, false)
}

// MeanAxis averages elements along axis with the same shape rules as SumAxis.
// Only float dtypes are supported. The mean over an empty axis is NaN.
func (cpu *CPUBackend) MeanAxis(a *ndarray.Array, axis int, keepDim bool) (*ndarray.Array, error) {
	if err := checkLive("mean", a); err != nil {
		return nil, err
	}
	if dt := a.DType(); dt != ndarray.Float64 && dt != ndarray.Float32 {
		return nil, ndarray.Errorf("mean", ndarray.ErrUnsupportedDtype, "%s (float64 or float32 required)", dt)
	}
	return cpu.reduceAxis("mean", a, axis, keepDim, true)
}

// Sum returns the total of all elements as a one-element array of a's dtype.
func (cpu *CPUBackend) Sum(a *ndarray.Array) (*ndarray.Array, error) {
	if err := checkLive("sum", a); err != nil {
		return nil, err
	}
	if err := checkNumeric("sum", a.DType()); err != nil {
		return nil, err
	}

	result, err := ndarray.New(ndarray.Shape{1}, a.DType())
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case ndarray.Float64:
		result.AsFloat64()[0] = sumFloat(a.AsFloat64())
	case ndarray.Float32:
		result.AsFloat32()[0] = float32(sumFloat(a.AsFloat32()))
	case ndarray.Uint64:
		var sum uint64
		for _, v := range a.AsUint64() {
			sum += v
		}
		result.AsUint64()[0] = sum
	}

	return result, nil
}

func sumFloat[T float32 | float64](data []T) float64 {
	var sum float64
	for _, v := range data {
		sum += float64(v)
	}
	return sum
}

func (cpu *CPUBackend) reduceAxis(op string, a *ndarray.Array, axis int, keepDim, mean bool) (*ndarray.Array, error) {
	if err := checkLive(op, a); err != nil {
		return nil, err
	}
	if err := checkNumeric(op, a.DType()); err != nil {
		return nil, err
	}

	shape := a.Shape()
	rank := len(shape)
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return nil, ndarray.Errorf(op, ndarray.ErrAxisOutOfRange, "axis %d for %dD array", axis, rank)
	}

	var outShape ndarray.Shape
	if keepDim || rank == 1 {
		outShape = shape.Clone()
		outShape[axis] = 1
	} else {
		outShape = make(ndarray.Shape, 0, rank-1)
		for i, d := range shape {
			if i != axis {
				outShape = append(outShape, d)
			}
		}
	}

	result, err := ndarray.New(outShape, a.DType())
	if err != nil {
		return nil, err
	}

	// The input viewed as [outer, extent, inner] with the reduced axis in the middle.
	r := reduction{
		outer:  ndarray.Shape(shape[:axis]).NumElements(),
		extent: shape[axis],
		inner:  ndarray.Shape(shape[axis+1:]).NumElements(),
		mean:   mean,
	}

	switch a.DType() {
	case ndarray.Float64:
		reduceFloat(result.AsFloat64(), a.AsFloat64(), r)
	case ndarray.Float32:
		reduceFloat(result.AsFloat32(), a.AsFloat32(), r)
	case ndarray.Uint64:
		reduceUint64(result.AsUint64(), a.AsUint64(), r)
	}

	return result, nil
}

type reduction struct {
	outer, extent, inner int
	mean                 bool
}

func reduceFloat[T float32 | float64](dst, src []T, r reduction) {
	for o := 0; o < r.outer; o++ {
		for i := 0; i < r.inner; i++ {
			var sum float64
			for k := 0; k < r.extent; k++ {
				sum += float64(src[(o*r.extent+k)*r.inner+i])
			}
			if r.mean {
				sum /= float64(r.extent)
			}
			dst[o*r.inner+i] = T(sum)
		}
	}
}

func reduceUint64(dst, src []uint64, r reduction) {
	for o := 0; o < r.outer; o++ {
		for i := 0; i < r.inner; i++ {
			var sum uint64
			for k := 0; k < r.extent; k++ {
				sum += src[(o*r.extent+k)*r.inner+i]
			}
			dst[o*r.inner+i] = sum
		}
	}
}
