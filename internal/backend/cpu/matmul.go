package cpu

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Dot performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Float inputs are accumulated in float64 and narrowed to the output dtype
// once per cell, which keeps float32 products accurate. Uint64 inputs are
// accumulated in uint64 (exact, wrapping modulo 2^64).
//
// If out is nil a new (M, N) array is allocated; otherwise out must have that
// shape and a's dtype. out may alias a or b.
func (cpu *CPUBackend) Dot(out, a, b *ndarray.Array) (*ndarray.Array, error) {
	if err := checkLive("dot", a, b); err != nil {
		return nil, err
	}
	if err := checkRank2("dot", a, b); err != nil {
		return nil, err
	}
	if err := checkSameDtype("dot", a, b); err != nil {
		return nil, err
	}

	m, k := a.Dim(0), a.Dim(1)
	kAlt, n := b.Dim(0), b.Dim(1)
	if k != kAlt {
		return nil, ndarray.Errorf("dot", ndarray.ErrShapeMismatch, "[%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}
	if err := checkNumeric("dot", a.DType()); err != nil {
		return nil, err
	}

	result, err := prepareOutput("dot", out, ndarray.Shape{m, n}, a.DType())
	if err != nil {
		return nil, err
	}

	// Writing straight into an input would corrupt later rows.
	target := result
	if aliases(result, a, b) {
		if target, err = ndarray.New(result.Shape(), result.DType()); err != nil {
			return nil, err
		}
	}

	switch a.DType() {
	case ndarray.Float64:
		matmulFloat(target.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cpu.cfg.Parallel)
	case ndarray.Float32:
		matmulFloat(target.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cpu.cfg.Parallel)
	case ndarray.Uint64:
		matmulUint64(target.AsUint64(), a.AsUint64(), b.AsUint64(), m, k, n, cpu.cfg.Parallel)
	}

	if target != result {
		copy(result.Data(), target.Data())
	}
	return result, nil
}

// matmulFloat computes C[i,j] = sum_k A[i,k] * B[k,j] with a float64 accumulator.
// Rows are split across workers; each cell is summed in k order.
func matmulFloat[T float32 | float64](c, a, b []T, m, k, n int, cfg parallel.Config) {
	parallel.ForRange(m, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < n; j++ {
				sum := 0.0
				for kIdx := 0; kIdx < k; kIdx++ {
					sum += float64(a[i*k+kIdx]) * float64(b[kIdx*n+j])
				}
				c[i*n+j] = T(sum)
			}
		}
	}, rowConfig(cfg, k*n))
}

func matmulUint64(c, a, b []uint64, m, k, n int, cfg parallel.Config) {
	parallel.ForRange(m, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < n; j++ {
				var sum uint64
				for kIdx := 0; kIdx < k; kIdx++ {
					sum += a[i*k+kIdx] * b[kIdx*n+j]
				}
				c[i*n+j] = sum
			}
		}
	}, rowConfig(cfg, k*n))
}

// rowConfig scales MinChunkSize (counted in scalar operations) down to rows
// that each cost work operations.
func rowConfig(cfg parallel.Config, work int) parallel.Config {
	if work > 0 {
		cfg.MinChunkSize = max(cfg.MinChunkSize/work, 1)
	}
	return cfg
}
