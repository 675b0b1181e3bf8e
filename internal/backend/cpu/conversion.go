package cpu

import (
	"math"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Cast converts a to dtype and always returns a new array.
//
// Conversions between numeric dtypes follow Go conversion rules, except that
// float to uint64 saturates: NaN and negative values become 0 and values above
// the uint64 range become math.MaxUint64. Bool converts to 0 or 1; numeric
// values convert to Bool as v != 0.
func (cpu *CPUBackend) Cast(a *ndarray.Array, dtype ndarray.DataType) (*ndarray.Array, error) {
	if err := checkLive("cast", a); err != nil {
		return nil, err
	}
	if err := checkCopyable("cast", a.DType()); err != nil {
		return nil, err
	}
	if err := checkCopyable("cast", dtype); err != nil {
		return nil, err
	}

	// Same dtype is a copy; uint64 values must not round-trip through float64.
	if a.DType() == dtype {
		return a.Clone(), nil
	}

	result, err := ndarray.New(a.Shape(), dtype)
	if err != nil {
		return nil, err
	}

	values := castSource(a)
	cfg := cpu.cfg.Parallel
	switch dtype {
	case ndarray.Float64:
		copy(result.AsFloat64(), values)
	case ndarray.Float32:
		dst := result.AsFloat32()
		parallel.For(len(values), func(i int) { dst[i] = float32(values[i]) }, cfg)
	case ndarray.Uint64:
		dst := result.AsUint64()
		parallel.For(len(values), func(i int) { dst[i] = saturateUint64(values[i]) }, cfg)
	case ndarray.Bool:
		dst := result.AsBool()
		parallel.For(len(values), func(i int) { dst[i] = values[i] != 0 }, cfg)
	}

	return result, nil
}

// castSource widens every element of a to float64.
func castSource(a *ndarray.Array) []float64 {
	out := make([]float64, a.Size())
	switch a.DType() {
	case ndarray.Float64:
		copy(out, a.AsFloat64())
	case ndarray.Float32:
		for i, v := range a.AsFloat32() {
			out[i] = float64(v)
		}
	case ndarray.Uint64:
		for i, v := range a.AsUint64() {
			out[i] = float64(v)
		}
	case ndarray.Bool:
		for i, v := range a.AsBool() {
			if v {
				out[i] = 1
			}
		}
	}
	return out
}

func saturateUint64(v float64) uint64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(v)
	}
}
