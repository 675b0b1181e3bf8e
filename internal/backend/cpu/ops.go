package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// binaryOp selects the arithmetic applied by the elementwise kernels.
type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
)

func (op binaryOp) String() string {
	if op == opSub {
		return "subtract"
	}
	return "add"
}

// Add computes a + b element-wise.
//
// a and b must have the same rank, dtype and extents. If out is nil a new
// array with a's shape and dtype is allocated; otherwise out must match and is
// overwritten (out may be a or b). Any rank is supported.
func (cpu *CPUBackend) Add(out, a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.elementwise(opAdd, out, a, b)
}

// Sub computes a - b element-wise with the same contract as Add.
// For uint64 the result wraps modulo 2^64.
func (cpu *CPUBackend) Sub(out, a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.elementwise(opSub, out, a, b)
}

func (cpu *CPUBackend) elementwise(op binaryOp, out, a, b *ndarray.Array) (*ndarray.Array, error) {
	name := op.String()
	if err := checkLive(name, a, b); err != nil {
		return nil, err
	}
	if err := checkSameShape(name, a, b); err != nil {
		return nil, err
	}
	if err := checkNumeric(name, a.DType()); err != nil {
		return nil, err
	}

	result, err := prepareOutput(name, out, a.Shape(), a.DType())
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case ndarray.Float64:
		binaryKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), op, cpu.cfg.Parallel)
	case ndarray.Float32:
		binaryKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), op, cpu.cfg.Parallel)
	case ndarray.Uint64:
		binaryKernel(result.AsUint64(), a.AsUint64(), b.AsUint64(), op, cpu.cfg.Parallel)
	}

	return result, nil
}

// binaryKernel applies op over the full flattened element range.
func binaryKernel[T number](dst, x, y []T, op binaryOp, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		switch op {
		case opAdd:
			for i := start; i < end; i++ {
				dst[i] = x[i] + y[i]
			}
		case opSub:
			for i := start; i < end; i++ {
				dst[i] = x[i] - y[i]
			}
		}
	}, cfg)
}
