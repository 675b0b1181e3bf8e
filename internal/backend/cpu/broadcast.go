package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// BroadcastAdd adds two matrices of possibly different shapes by zero padding.
//
// The output has shape [max(a.rows, b.rows), max(a.cols, b.cols)]. Each output
// cell (i, j) is a[i,j] + b[i,j], where an operand contributes 0 when (i, j)
// lies outside its extent. This is not size-1 axis broadcasting: a [1, 3]
// operand is not repeated across rows.
//
// If out is nil a new array is allocated; otherwise out must have the output
// shape and the inputs' dtype. out may alias a or b.
func (cpu *CPUBackend) BroadcastAdd(out, a, b *ndarray.Array) (*ndarray.Array, error) {
	if err := checkLive("broadcast add", a, b); err != nil {
		return nil, err
	}
	if err := checkRank2("broadcast add", a, b); err != nil {
		return nil, err
	}
	if err := checkSameDtype("broadcast add", a, b); err != nil {
		return nil, err
	}
	if err := checkNumeric("broadcast add", a.DType()); err != nil {
		return nil, err
	}

	ext := padExtents{
		aRows: a.Dim(0), aCols: a.Dim(1),
		bRows: b.Dim(0), bCols: b.Dim(1),
	}
	ext.rows = max(ext.aRows, ext.bRows)
	ext.cols = max(ext.aCols, ext.bCols)

	result, err := prepareOutput("broadcast add", out, ndarray.Shape{ext.rows, ext.cols}, a.DType())
	if err != nil {
		return nil, err
	}

	target := result
	if aliases(result, a, b) {
		if target, err = ndarray.New(result.Shape(), result.DType()); err != nil {
			return nil, err
		}
	}

	switch a.DType() {
	case ndarray.Float64:
		padAddKernel(target.AsFloat64(), a.AsFloat64(), b.AsFloat64(), ext)
	case ndarray.Float32:
		padAddKernel(target.AsFloat32(), a.AsFloat32(), b.AsFloat32(), ext)
	case ndarray.Uint64:
		padAddKernel(target.AsUint64(), a.AsUint64(), b.AsUint64(), ext)
	}

	if target != result {
		copy(result.Data(), target.Data())
	}
	return result, nil
}

type padExtents struct {
	aRows, aCols int
	bRows, bCols int
	rows, cols   int
}

func padAddKernel[T number](dst, a, b []T, e padExtents) {
	for i := 0; i < e.rows; i++ {
		for j := 0; j < e.cols; j++ {
			var va, vb T
			if i < e.aRows && j < e.aCols {
				va = a[i*e.aCols+j]
			}
			if i < e.bRows && j < e.bCols {
				vb = b[i*e.bCols+j]
			}
			dst[i*e.cols+j] = va + vb
		}
	}
}
