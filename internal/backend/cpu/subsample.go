package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/random"
)

// Subsample draws n distinct rows of a without replacement.
//
// The row indices are permuted with an unbiased Fisher-Yates shuffle driven by
// rng, and the first n permuted rows are copied in that order. The result has
// shape [n, a.shape[1:]...]. The same rng state yields the same rows.
func (cpu *CPUBackend) Subsample(a *ndarray.Array, n int, rng random.IntSource) (*ndarray.Array, error) {
	if err := checkLive("subsample", a); err != nil {
		return nil, err
	}
	if n < 0 || n > a.Dim(0) {
		return nil, ndarray.Errorf("subsample", ndarray.ErrSampleSize, "requested %d of %d rows", n, a.Dim(0))
	}
	if err := checkCopyable("subsample", a.DType()); err != nil {
		return nil, err
	}

	outShape := a.Shape()
	outShape[0] = n
	result, err := ndarray.New(outShape, a.DType())
	if err != nil {
		return nil, err
	}

	rows := random.Permutation(a.Dim(0), rng)

	rowBytes := a.Strides()[0]
	src, dst := a.Data(), result.Data()
	for i, r := range rows[:n] {
		copy(dst[i*rowBytes:(i+1)*rowBytes], src[r*rowBytes:(r+1)*rowBytes])
	}

	return result, nil
}
