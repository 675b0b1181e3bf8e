// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/random"
)

// Source is an explicit, seedable PRNG state owned by the caller.
type Source = random.Source

// NewSource creates a Source. A negative seed picks a random one.
func NewSource(seed int64) *Source {
	return random.NewSource(seed)
}

// UniformNoise returns a [rows, cols] float array with elements drawn
// uniformly from [mean-halfWidth, mean+halfWidth).
func UniformNoise(rows, cols int, mean, halfWidth float64, dtype DataType, src *Source) (*Array, error) {
	return random.UniformNoise(rows, cols, mean, halfWidth, dtype, src)
}

// Normal returns a [rows, cols] float array of normally distributed elements.
func Normal(rows, cols int, mean, std float64, dtype DataType, src *Source) (*Array, error) {
	return random.Normal(rows, cols, mean, std, dtype, src)
}

// Permutation returns a uniformly random permutation of [0, n).
func Permutation(n int, src IntSource) []int {
	return random.Permutation(n, src)
}
