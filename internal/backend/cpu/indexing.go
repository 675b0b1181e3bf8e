package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Where performs conditional element selection:
// output[i] = condition[i] ? x[i] : y[i].
//
// condition must be a Bool array and x, y must share its shape; x and y must
// have the same dtype, which the output takes. No broadcasting is applied.
//
// Example:
//
//	mask, _ := backend.Compare(nil, a, b, cpu.Greater)
//	larger, err := backend.Where(nil, mask, a, b) // element-wise max
func (cpu *CPUBackend) Where(out, condition, x, y *ndarray.Array) (*ndarray.Array, error) {
	if err := checkLive("where", condition, x, y); err != nil {
		return nil, err
	}
	if condition.DType() != ndarray.Bool {
		return nil, ndarray.Errorf("where", ndarray.ErrDtypeMismatch, "condition must be bool, got %s", condition.DType())
	}
	if err := checkSameShape("where", x, y); err != nil {
		return nil, err
	}
	if !condition.Shape().Equal(x.Shape()) {
		return nil, ndarray.Errorf("where", ndarray.ErrShapeMismatch, "condition %v vs values %v", condition.Shape(), x.Shape())
	}
	if err := checkCopyable("where", x.DType()); err != nil {
		return nil, err
	}

	result, err := prepareOutput("where", out, x.Shape(), x.DType())
	if err != nil {
		return nil, err
	}

	// Each element depends only on its own index, so writing in place is safe.
	elemSize := ndarray.ElementSize(x.DType())
	dst, xData, yData, mask := result.Data(), x.Data(), y.Data(), condition.AsBool()
	parallel.ForRange(len(mask), func(start, end int) {
		for i := start; i < end; i++ {
			src := yData
			if mask[i] {
				src = xData
			}
			off := i * elemSize
			copy(dst[off:off+elemSize], src[off:off+elemSize])
		}
	}, cpu.cfg.Parallel)

	return result, nil
}
