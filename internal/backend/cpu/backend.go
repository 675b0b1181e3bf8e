// Package cpu implements the array engines on the CPU: elementwise arithmetic
// and comparison, matrix transpose and product, zero-padding broadcast add,
// concatenation, slicing, row subsampling, axis reductions, dtype casts and
// conditional selection.
package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Config controls CPU backend execution.
type Config struct {
	// Parallel controls work splitting for Add, Sub, Compare, Dot, Cast and Where.
	// Every output element is computed by exactly one goroutine in a fixed
	// order, so results do not depend on the worker count.
	Parallel parallel.Config
}

// DefaultConfig returns the default backend configuration.
func DefaultConfig() Config {
	return Config{Parallel: parallel.DefaultConfig()}
}

// CPUBackend implements array operations on CPU.
//
// Every operation validates its inputs before allocating or writing, and
// returns an *ndarray.OpError wrapping one of the ndarray sentinel errors on
// failure. A caller-supplied output array is never left partially written.
type CPUBackend struct {
	cfg Config
}

// New creates a new CPU backend with DefaultConfig.
func New() *CPUBackend {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a CPU backend with the given configuration.
func NewWithConfig(cfg Config) *CPUBackend {
	return &CPUBackend{cfg: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the backend configuration.
func (cpu *CPUBackend) Config() Config {
	return cpu.cfg
}

// number is the set of element types arithmetic is defined for.
type number interface {
	float64 | float32 | uint64
}

// checkLive fails with ErrReleased if any array is nil or released.
func checkLive(op string, arrays ...*ndarray.Array) error {
	for _, a := range arrays {
		if err := a.Check(op); err != nil {
			return err
		}
	}
	return nil
}

// checkNumeric fails with ErrUnsupportedDtype unless dt supports arithmetic.
func checkNumeric(op string, dt ndarray.DataType) error {
	if !dt.Numeric() {
		return ndarray.Errorf(op, ndarray.ErrUnsupportedDtype, "%s", dt)
	}
	return nil
}

// checkCopyable fails with ErrUnsupportedDtype for unrecognized tags.
func checkCopyable(op string, dt ndarray.DataType) error {
	if !dt.Valid() {
		return ndarray.Errorf(op, ndarray.ErrUnsupportedDtype, "%s", dt)
	}
	return nil
}

// checkSameDtype fails with ErrDtypeMismatch if a and b differ in dtype.
func checkSameDtype(op string, a, b *ndarray.Array) error {
	if a.DType() != b.DType() {
		return ndarray.Errorf(op, ndarray.ErrDtypeMismatch, "%s vs %s", a.DType(), b.DType())
	}
	return nil
}

// checkSameShape fails unless a and b have the same rank, dtype and extents.
func checkSameShape(op string, a, b *ndarray.Array) error {
	if a.Rank() != b.Rank() {
		return ndarray.Errorf(op, ndarray.ErrShapeMismatch, "rank %d vs %d", a.Rank(), b.Rank())
	}
	if err := checkSameDtype(op, a, b); err != nil {
		return err
	}
	if !a.Shape().Equal(b.Shape()) {
		return ndarray.Errorf(op, ndarray.ErrShapeMismatch, "%v vs %v", a.Shape(), b.Shape())
	}
	return nil
}

// checkRank2 fails with ErrRank unless every array is a matrix.
func checkRank2(op string, arrays ...*ndarray.Array) error {
	for _, a := range arrays {
		if a.Rank() != 2 {
			return ndarray.Errorf(op, ndarray.ErrRank, "only 2D arrays supported, got %dD", a.Rank())
		}
	}
	return nil
}

// prepareOutput returns out if it matches shape and dtype, or allocates a new
// array when out is nil.
func prepareOutput(op string, out *ndarray.Array, shape ndarray.Shape, dtype ndarray.DataType) (*ndarray.Array, error) {
	if out == nil {
		result, err := ndarray.New(shape, dtype)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	if err := out.Check(op); err != nil {
		return nil, err
	}
	if out.DType() != dtype {
		return nil, ndarray.Errorf(op, ndarray.ErrDtypeMismatch, "output is %s, expected %s", out.DType(), dtype)
	}
	if !out.Shape().Equal(shape) {
		return nil, ndarray.Errorf(op, ndarray.ErrShapeMismatch, "output shape %v, expected %v", out.Shape(), shape)
	}
	return out, nil
}

// aliases reports whether out shares its buffer with any of the inputs.
func aliases(out *ndarray.Array, inputs ...*ndarray.Array) bool {
	if out == nil || out.ByteSize() == 0 {
		return false
	}
	for _, in := range inputs {
		if in == out {
			return true
		}
	}
	return false
}
