package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// CompareOp selects the relation computed by Compare.
type CompareOp int

// Supported comparison operators.
const (
	Greater CompareOp = iota + 1 // a > b
	Less                         // a < b
	Equal                        // a == b
)

// ParseCompareOp maps '>', '<' and '=' to a CompareOp.
func ParseCompareOp(r rune) (CompareOp, error) {
	switch r {
	case '>':
		return Greater, nil
	case '<':
		return Less, nil
	case '=':
		return Equal, nil
	default:
		return 0, ndarray.Errorf("compare", ndarray.ErrInvalidOperator, "%q", r)
	}
}

// String returns the operator symbol.
func (op CompareOp) String() string {
	switch op {
	case Greater:
		return ">"
	case Less:
		return "<"
	case Equal:
		return "=="
	default:
		return "?"
	}
}

func (op CompareOp) valid() bool {
	return op == Greater || op == Less || op == Equal
}

// Compare evaluates a <op> b element-wise into a Bool array.
//
// a and b must have the same rank, dtype and extents. If out is nil a new Bool
// array with a's shape is allocated; otherwise out must be a Bool array of
// that shape.
func (cpu *CPUBackend) Compare(out, a, b *ndarray.Array, op CompareOp) (*ndarray.Array, error) {
	if !op.valid() {
		return nil, ndarray.Errorf("compare", ndarray.ErrInvalidOperator, "operator %d", int(op))
	}
	if err := checkLive("compare", a, b); err != nil {
		return nil, err
	}
	if err := checkSameShape("compare", a, b); err != nil {
		return nil, err
	}
	if err := checkNumeric("compare", a.DType()); err != nil {
		return nil, err
	}

	result, err := prepareOutput("compare", out, a.Shape(), ndarray.Bool)
	if err != nil {
		return nil, err
	}

	dst := result.AsBool()
	switch a.DType() {
	case ndarray.Float64:
		compareKernel(dst, a.AsFloat64(), b.AsFloat64(), op, cpu.cfg.Parallel)
	case ndarray.Float32:
		compareKernel(dst, a.AsFloat32(), b.AsFloat32(), op, cpu.cfg.Parallel)
	case ndarray.Uint64:
		compareKernel(dst, a.AsUint64(), b.AsUint64(), op, cpu.cfg.Parallel)
	}

	return result, nil
}

func compareKernel[T number](dst []bool, x, y []T, op CompareOp, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		switch op {
		case Greater:
			for i := start; i < end; i++ {
				dst[i] = x[i] > y[i]
			}
		case Less:
			for i := start; i < end; i++ {
				dst[i] = x[i] < y[i]
			}
		case Equal:
			for i := start; i < end; i++ {
				dst[i] = x[i] == y[i]
			}
		}
	}, cfg)
}
