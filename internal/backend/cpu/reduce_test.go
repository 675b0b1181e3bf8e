package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/ndarray"
)

func TestSumAxis_1D(t *testing.T) {
	backend := newTestBackend()
	x := mustFloat64(t, []float64{1, 2, 3, 4}, 4)

	for _, keepDim := range []bool{true, false} {
		result, err := backend.SumAxis(x, 0, keepDim)
		require.NoError(t, err)
		assert.Equal(t, ndarray.Shape{1}, result.Shape())
		assert.Equal(t, []float64{10}, result.AsFloat64())
	}
}

func TestSumAxis_2D(t *testing.T) {
	backend := newTestBackend()
	// [[1 2 3]
	//  [4 5 6]]
	x := mustSequence(t, ndarray.Float64, 2, 3)

	tests := []struct {
		name    string
		axis    int
		keepDim bool
		shape   ndarray.Shape
		want    []float64
	}{
		{"rows keepdim", 0, true, ndarray.Shape{1, 3}, []float64{5, 7, 9}},
		{"rows", 0, false, ndarray.Shape{3}, []float64{5, 7, 9}},
		{"cols keepdim", 1, true, ndarray.Shape{2, 1}, []float64{6, 15}},
		{"cols", 1, false, ndarray.Shape{2}, []float64{6, 15}},
		{"negative axis", -1, false, ndarray.Shape{2}, []float64{6, 15}},
		{"negative first axis", -2, true, ndarray.Shape{1, 3}, []float64{5, 7, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := backend.SumAxis(x, tt.axis, tt.keepDim)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, result.Shape())
			assert.Equal(t, tt.want, result.AsFloat64())
		})
	}
}

func TestSumAxis_3DMiddle(t *testing.T) {
	backend := newTestBackend()
	x := mustSequence(t, ndarray.Float32, 2, 3, 2)

	result, err := backend.SumAxis(x, 1, false)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 2}, result.Shape())
	// Batch 0: [1 2] [3 4] [5 6]; batch 1: [7 8] [9 10] [11 12].
	assert.Equal(t, []float32{9, 12, 27, 30}, result.AsFloat32())
}

func TestSumAxis_Uint64(t *testing.T) {
	backend := newTestBackend()
	x, err := ndarray.FromSlice([]uint64{math.MaxUint64, 2, 3, 4}, ndarray.Shape{2, 2})
	require.NoError(t, err)

	result, err := backend.SumAxis(x, 0, false)
	require.NoError(t, err)
	// Wraps modulo 2^64.
	assert.Equal(t, []uint64{2, 6}, result.AsUint64())
}

func TestSumAxis_Errors(t *testing.T) {
	backend := newTestBackend()
	x := mustSequence(t, ndarray.Float64, 2, 3)

	_, err := backend.SumAxis(x, 2, false)
	assert.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
	_, err = backend.SumAxis(x, -3, false)
	assert.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)

	b, err := ndarray.FromSlice([]bool{true, false}, ndarray.Shape{2})
	require.NoError(t, err)
	_, err = backend.SumAxis(b, 0, false)
	assert.ErrorIs(t, err, ndarray.ErrUnsupportedDtype)

	x.Release()
	_, err = backend.SumAxis(x, 0, false)
	assert.ErrorIs(t, err, ndarray.ErrReleased)
}

func TestMeanAxis(t *testing.T) {
	backend := newTestBackend()
	x := mustSequence(t, ndarray.Float64, 2, 3)

	result, err := backend.MeanAxis(x, 0, true)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{1, 3}, result.Shape())
	assert.Equal(t, []float64{2.5, 3.5, 4.5}, result.AsFloat64())

	result, err = backend.MeanAxis(x, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, result.AsFloat64())
}

func TestMeanAxis_EmptyAxis(t *testing.T) {
	backend := newTestBackend()
	x, err := ndarray.New(ndarray.Shape{2, 0}, ndarray.Float64)
	require.NoError(t, err)

	result, err := backend.MeanAxis(x, 1, false)
	require.NoError(t, err)
	require.Equal(t, ndarray.Shape{2}, result.Shape())
	for _, v := range result.AsFloat64() {
		assert.True(t, math.IsNaN(v))
	}
}

func TestMeanAxis_FloatOnly(t *testing.T) {
	backend := newTestBackend()
	x := mustSequence(t, ndarray.Uint64, 2, 2)

	_, err := backend.MeanAxis(x, 0, false)
	assert.ErrorIs(t, err, ndarray.ErrUnsupportedDtype)
}

func TestSum(t *testing.T) {
	backend := newTestBackend()

	tests := []struct {
		dtype ndarray.DataType
		want  float64
	}{
		{ndarray.Float64, 21},
		{ndarray.Float32, 21},
		{ndarray.Uint64, 21},
	}
	for _, tt := range tests {
		t.Run(tt.dtype.String(), func(t *testing.T) {
			result, err := backend.Sum(mustSequence(t, tt.dtype, 2, 3))
			require.NoError(t, err)
			assert.Equal(t, ndarray.Shape{1}, result.Shape())
			assert.Equal(t, tt.dtype, result.DType())
			got, err := result.GetFloat(0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	empty, err := ndarray.New(ndarray.Shape{0}, ndarray.Float64)
	require.NoError(t, err)
	result, err := backend.Sum(empty)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, result.AsFloat64())
}
