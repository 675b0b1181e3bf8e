package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShapeAndStrides(t *testing.T) {
	a, err := New(Shape{2, 3}, Float64)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, 6, a.Size())
	assert.Equal(t, []int{24, 8}, a.Strides())
	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, Float64, a.DType())
	assert.Equal(t, 48, a.ByteSize())
}

func TestStrideInvariant(t *testing.T) {
	shapes := []Shape{{1}, {5}, {2, 3}, {4, 1, 7}, {2, 3, 4, 5}, {3, 0, 2}}
	dtypes := []DataType{Float64, Float32, Uint64, Bool}

	for _, shape := range shapes {
		for _, dt := range dtypes {
			a, err := New(shape, dt)
			require.NoError(t, err, "shape %v dtype %s", shape, dt)

			strides := a.Strides()
			rank := a.Rank()
			assert.Equal(t, ElementSize(dt), strides[rank-1])
			for i := rank - 2; i >= 0; i-- {
				assert.Equal(t, strides[i+1]*shape[i+1], strides[i], "axis %d of %v", i, shape)
			}
			assert.Equal(t, shape.NumElements()*ElementSize(dt), a.ByteSize())
			assert.Equal(t, shape.NumElements(), a.Size())
		}
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New(Shape{}, Float64)
	assert.ErrorIs(t, err, ErrRank)

	_, err = New(Shape{2, -1}, Float64)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = New(Shape{1 << 40, 1 << 40}, Float64)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestZeroExtent(t *testing.T) {
	a, err := New(Shape{3, 0}, Float32)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Size())
	assert.Equal(t, 0, a.ByteSize())
	assert.Nil(t, a.AsFloat32())

	_, err = a.Offset(0, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestElementSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		want  int
	}{
		{Float64, 8},
		{Float32, 4},
		{Uint64, 8},
		{Bool, 1},
		{DataType(2), 2},
		{DataType(7), 7},
		{DataType(8), 1},
		{DataType('x'), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ElementSize(tt.dtype), "dtype %d", tt.dtype)
		assert.Equal(t, tt.want, tt.dtype.Size())
	}
}

func TestRawFallbackDtype(t *testing.T) {
	a, err := New(Shape{2, 2}, DataType(3))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 3}, a.Strides())
	assert.False(t, a.DType().Valid())

	require.NoError(t, a.SetBytes([]byte{1, 2, 3}, 1, 1))
	raw, err := a.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, raw)

	err = a.SetFloat(1, 0, 0)
	assert.ErrorIs(t, err, ErrUnsupportedDtype)
	err = Set(a, 1.0, 0, 0)
	assert.ErrorIs(t, err, ErrDtypeMismatch)
}

func TestParseDataType(t *testing.T) {
	for _, name := range []string{"float64", "float32", "uint64", "bool"} {
		dt, err := ParseDataType(name)
		require.NoError(t, err)
		assert.Equal(t, name, dt.String())
	}

	dt, err := ParseDataType("d")
	require.NoError(t, err)
	assert.Equal(t, Float64, dt)

	_, err = ParseDataType("complex128")
	assert.ErrorIs(t, err, ErrUnsupportedDtype)
}

func TestRelease(t *testing.T) {
	a, err := New(Shape{2, 2}, Float64)
	require.NoError(t, err)

	a.Release()
	assert.True(t, a.Released())
	assert.Nil(t, a.Data())
	assert.Equal(t, 0, a.Size())

	// Multiple releases should be safe
	a.Release()

	_, err = a.Offset(0, 0)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = Get[float64](a, 0, 0)
	assert.ErrorIs(t, err, ErrReleased)
}

func TestAsWrongTypePanics(t *testing.T) {
	a, err := New(Shape{2}, Float32)
	require.NoError(t, err)

	assert.Len(t, a.AsFloat32(), 2)
	assert.Panics(t, func() { _ = a.AsFloat64() })
	assert.Panics(t, func() { _ = a.AsUint64() })
	assert.Panics(t, func() { _ = a.AsBool() })
}

func TestTypedViewsAreZeroCopy(t *testing.T) {
	a, err := New(Shape{3, 2}, Uint64)
	require.NoError(t, err)

	data := a.AsUint64()
	require.Len(t, data, 6)
	data[5] = 42

	v, err := Get[uint64](a, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)
}

func TestCloneAndEqual(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	c := a.Clone()
	assert.True(t, a.Equal(c))

	require.NoError(t, Set(c, 9.0, 0, 0))
	assert.False(t, a.Equal(c))

	v, err := Get[float64](a, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone must not alias the source buffer")

	d, err := FromSlice([]float64{1, 2, 3, 4}, Shape{4})
	require.NoError(t, err)
	assert.False(t, a.Equal(d))
}

func TestFromSliceAndValues(t *testing.T) {
	a, err := FromSlice([]float32{1.5, -2, 3.25}, Shape{3})
	require.NoError(t, err)
	assert.Equal(t, Float32, a.DType())

	vals, err := Values[float32](a)
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, -2, 3.25}, vals)

	_, err = Values[float64](a)
	assert.ErrorIs(t, err, ErrDtypeMismatch)

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFull(t *testing.T) {
	a, err := Full(Shape{2, 3}, uint64(7))
	require.NoError(t, err)

	vals, err := Values[uint64](a)
	require.NoError(t, err)
	assert.Equal(t, []uint64{7, 7, 7, 7, 7, 7}, vals)

	b, err := Full(Shape{2}, true)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, b.AsBool())

	z, err := Zeros(Shape{2}, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, z.AsFloat64())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "(2,3,4)", Shape{2, 3, 4}.String())
	assert.Equal(t, "(7)", Shape{7}.String())
}

func TestArrayString(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, "[[1.000 2.000 3.000]\n [4.000 5.000 6.000]]", a.String())

	b, err := FromSlice([]bool{true, false}, Shape{2})
	require.NoError(t, err)
	assert.Equal(t, "[true false]", b.String())

	u, err := FromSlice([]uint64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, "[[[1 2]\n  [3 4]]\n [[5 6]\n  [7 8]]]", u.String())
}
