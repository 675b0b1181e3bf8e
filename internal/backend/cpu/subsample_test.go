package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/random"
)

// rowKey returns the first element of row i, which identifies rows built by
// mustSequence uniquely.
func rowKey(t *testing.T, a *ndarray.Array, i int) float64 {
	t.Helper()
	v, err := a.GetFloat(i, 0)
	require.NoError(t, err)
	return v
}

func TestCPUBackend_Subsample(t *testing.T) {
	backend := newTestBackend()
	a := mustSequence(t, ndarray.Float64, 10, 3)

	result, err := backend.Subsample(a, 4, random.NewSource(7))
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{4, 3}, result.Shape())

	seen := make(map[float64]bool)
	for i := 0; i < 4; i++ {
		key := rowKey(t, result, i)
		assert.False(t, seen[key], "row %v drawn twice", key)
		seen[key] = true

		// Whole rows are copied.
		for j := 1; j < 3; j++ {
			v, err := result.GetFloat(i, j)
			require.NoError(t, err)
			assert.Equal(t, key+float64(j), v)
		}
	}
}

func TestCPUBackend_SubsampleReproducible(t *testing.T) {
	backend := newTestBackend()
	a := mustSequence(t, ndarray.Uint64, 50, 2)

	first, err := backend.Subsample(a, 20, random.NewSource(42))
	require.NoError(t, err)
	second, err := backend.Subsample(a, 20, random.NewSource(42))
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	all, err := backend.Subsample(a, 50, random.NewSource(1))
	require.NoError(t, err)
	seen := make(map[float64]bool)
	for i := 0; i < 50; i++ {
		seen[rowKey(t, all, i)] = true
	}
	assert.Len(t, seen, 50)
}

func TestCPUBackend_SubsampleRank3(t *testing.T) {
	backend := newTestBackend()
	a := mustSequence(t, ndarray.Float32, 5, 2, 3)

	result, err := backend.Subsample(a, 2, random.NewSource(3))
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 2, 3}, result.Shape())
}

func TestCPUBackend_SubsampleErrors(t *testing.T) {
	backend := newTestBackend()
	a := mustSequence(t, ndarray.Float64, 3, 2)
	src := random.NewSource(1)

	_, err := backend.Subsample(a, 4, src)
	assert.ErrorIs(t, err, ndarray.ErrSampleSize)
	_, err = backend.Subsample(a, -1, src)
	assert.ErrorIs(t, err, ndarray.ErrSampleSize)

	none, err := backend.Subsample(a, 0, src)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{0, 2}, none.Shape())
}
