package ndarray

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a, err := ndarray.Zeros(ndarray.Shape{3, 4}, ndarray.Float64)
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	// Data is already zero-initialized by make()
	return New(shape, dtype)
}

// Full creates an array filled with value.
//
// Example:
//
//	a, err := ndarray.Full(ndarray.Shape{3, 3}, float32(3.14))
func Full[T Element](shape Shape, value T) (*Array, error) {
	a, err := New(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	elemSize := ElementSize(a.dtype)
	for off := 0; off < len(a.data); off += elemSize {
		encode(a.data[off:], value)
	}
	return a, nil
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T Element](data []T, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, Errorf("from slice", ErrShapeMismatch, "shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	a, err := New(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}

	elemSize := ElementSize(a.dtype)
	for i, v := range data {
		encode(a.data[i*elemSize:], v)
	}
	return a, nil
}

// Values returns a copy of the array's elements as []T.
// T must be the Go type backing the array's dtype.
func Values[T Element](a *Array) ([]T, error) {
	if err := a.Check("values"); err != nil {
		return nil, err
	}
	if want := DataTypeOf[T](); want != a.dtype {
		return nil, Errorf("values", ErrDtypeMismatch, "array is %s, requested %s", a.dtype, want)
	}

	elemSize := ElementSize(a.dtype)
	out := make([]T, a.Size())
	for i := range out {
		out[i] = decode[T](a.data[i*elemSize:])
	}
	return out, nil
}
