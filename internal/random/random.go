// Package random provides caller-owned, seedable random state and the
// random array generators built on it.
//
// No function in this package touches process-wide random state: every
// generator takes an explicit *Source so results are reproducible under test.
package random

import (
	"math"
	"math/rand"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// IntSource draws uniform integers in [0, n).
// *Source and *rand.Rand both satisfy it.
type IntSource interface {
	Intn(n int) int
}

// Source is an explicit PRNG state. It is not safe for concurrent use.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource creates a Source seeded with seed. A negative seed picks a random one.
func NewSource(seed int64) *Source {
	if seed < 0 {
		seed = rand.Int63() //nolint:gosec // User requested random seed
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)), //nolint:gosec // Deterministic seed for reproducibility
		seed: seed,
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a uniform integer in [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// boxMuller returns two independent standard normal samples.
// u1 is drawn from (0, 1] so log(u1) is finite.
func (s *Source) boxMuller() (float64, float64) {
	u1 := 1 - s.rng.Float64()
	u2 := s.rng.Float64()
	r := math.Sqrt(-2.0 * math.Log(u1))
	return r * math.Cos(2.0*math.Pi*u2), r * math.Sin(2.0*math.Pi*u2)
}

// Shuffle permutes indices in place with an unbiased Fisher-Yates shuffle:
// for i from the last index down to 1, swap indices[i] with indices[j] where
// j is uniform in [0, i].
func Shuffle(indices []int, src IntSource) {
	for i := len(indices) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
}

// Permutation returns a random permutation of [0, n).
func Permutation(n int, src IntSource) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	Shuffle(indices, src)
	return indices
}

// UniformNoise creates a rows x cols array with values mean + U(-halfWidth, halfWidth).
// Only float dtypes are supported.
func UniformNoise(rows, cols int, mean, halfWidth float64, dtype ndarray.DataType, src *Source) (*ndarray.Array, error) {
	return fill("uniform noise", rows, cols, dtype, func(dst []float64) {
		for i := range dst {
			dst[i] = mean + (src.Float64()*2-1)*halfWidth
		}
	})
}

// Normal creates a rows x cols array of N(mean, std^2) samples (Box-Muller).
// Only float dtypes are supported.
func Normal(rows, cols int, mean, std float64, dtype ndarray.DataType, src *Source) (*ndarray.Array, error) {
	return fill("normal", rows, cols, dtype, func(dst []float64) {
		for i := 0; i < len(dst); i += 2 {
			z0, z1 := src.boxMuller()
			dst[i] = mean + std*z0
			if i+1 < len(dst) {
				dst[i+1] = mean + std*z1
			}
		}
	})
}

// fill validates the request, generates rows*cols float64 samples and narrows
// them into a new array of dtype.
func fill(op string, rows, cols int, dtype ndarray.DataType, gen func(dst []float64)) (*ndarray.Array, error) {
	if dtype != ndarray.Float64 && dtype != ndarray.Float32 {
		return nil, ndarray.Errorf(op, ndarray.ErrUnsupportedDtype, "%s (float64 or float32 required)", dtype)
	}

	a, err := ndarray.New(ndarray.Shape{rows, cols}, dtype)
	if err != nil {
		return nil, err
	}

	if dtype == ndarray.Float64 {
		gen(a.AsFloat64())
		return a, nil
	}

	samples := make([]float64, a.Size())
	gen(samples)
	dst := a.AsFloat32()
	for i, v := range samples {
		dst[i] = float32(v)
	}
	return a, nil
}
