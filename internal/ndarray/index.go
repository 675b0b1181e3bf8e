package ndarray

import (
	"encoding/binary"
	"math"
)

// Offset converts a multi-index into a byte offset: sum(idx[i] * strides[i]).
//
// The index must have exactly Rank() coordinates and every coordinate must
// satisfy 0 <= idx[i] < shape[i].
func (a *Array) Offset(idx ...int) (int, error) {
	if err := a.Check("offset"); err != nil {
		return 0, err
	}
	if len(idx) != len(a.shape) {
		return 0, Errorf("offset", ErrIndexOutOfRange, "expected %d indices, got %d", len(a.shape), len(idx))
	}

	offset := 0
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			return 0, Errorf("offset", ErrIndexOutOfRange, "index %d out of bounds for axis %d (size %d)", v, i, a.shape[i])
		}
		offset += v * a.strides[i]
	}
	return offset, nil
}

// At returns a view of the raw bytes of the element at idx.
// The view aliases the buffer; writes through it modify the array.
func (a *Array) At(idx ...int) ([]byte, error) {
	off, err := a.Offset(idx...)
	if err != nil {
		return nil, err
	}
	n := ElementSize(a.dtype)
	return a.data[off : off+n : off+n], nil
}

// SetBytes copies exactly ElementSize(dtype) bytes from src into the element
// at idx. The caller is responsible for src using the array's representation.
func (a *Array) SetBytes(src []byte, idx ...int) error {
	dst, err := a.At(idx...)
	if err != nil {
		return err
	}
	if len(src) < len(dst) {
		return Errorf("set", ErrShapeMismatch, "need %d bytes, got %d", len(dst), len(src))
	}
	copy(dst, src[:len(dst)])
	return nil
}

// Get returns the element at idx as T.
// T must be the Go type backing the array's dtype.
func Get[T Element](a *Array, idx ...int) (T, error) {
	var zero T
	if err := a.Check("get"); err != nil {
		return zero, err
	}
	if want := DataTypeOf[T](); want != a.dtype {
		return zero, Errorf("get", ErrDtypeMismatch, "array is %s, requested %s", a.dtype, want)
	}
	raw, err := a.At(idx...)
	if err != nil {
		return zero, err
	}
	return decode[T](raw), nil
}

// Set writes v into the element at idx.
// T must be the Go type backing the array's dtype.
func Set[T Element](a *Array, v T, idx ...int) error {
	if err := a.Check("set"); err != nil {
		return err
	}
	if want := DataTypeOf[T](); want != a.dtype {
		return Errorf("set", ErrDtypeMismatch, "array is %s, value is %s", a.dtype, want)
	}
	raw, err := a.At(idx...)
	if err != nil {
		return err
	}
	encode(raw, v)
	return nil
}

// GetFloat returns the element at idx converted to float64.
// Only numeric dtypes are supported.
func (a *Array) GetFloat(idx ...int) (float64, error) {
	if err := a.Check("get"); err != nil {
		return 0, err
	}
	if !a.dtype.Numeric() {
		return 0, Errorf("get", ErrUnsupportedDtype, "%s", a.dtype)
	}
	raw, err := a.At(idx...)
	if err != nil {
		return 0, err
	}
	return LoadFloat(raw, a.dtype), nil
}

// SetFloat converts v to the array's dtype and writes it at idx.
// Only numeric dtypes are supported.
func (a *Array) SetFloat(v float64, idx ...int) error {
	if err := a.Check("set"); err != nil {
		return err
	}
	if !a.dtype.Numeric() {
		return Errorf("set", ErrUnsupportedDtype, "%s", a.dtype)
	}
	raw, err := a.At(idx...)
	if err != nil {
		return err
	}
	StoreFloat(raw, a.dtype, v)
	return nil
}

// LoadFloat decodes one numeric element from raw as float64.
// dt must be numeric.
func LoadFloat(raw []byte, dt DataType) float64 {
	switch dt {
	case Float64:
		return math.Float64frombits(binary.NativeEndian.Uint64(raw))
	case Float32:
		return float64(math.Float32frombits(binary.NativeEndian.Uint32(raw)))
	case Uint64:
		return float64(binary.NativeEndian.Uint64(raw))
	default:
		panic("LoadFloat: non-numeric dtype " + dt.String())
	}
}

// StoreFloat encodes v as one numeric element of type dt into raw.
// dt must be numeric.
func StoreFloat(raw []byte, dt DataType, v float64) {
	switch dt {
	case Float64:
		binary.NativeEndian.PutUint64(raw, math.Float64bits(v))
	case Float32:
		binary.NativeEndian.PutUint32(raw, math.Float32bits(float32(v)))
	case Uint64:
		binary.NativeEndian.PutUint64(raw, uint64(v))
	default:
		panic("StoreFloat: non-numeric dtype " + dt.String())
	}
}

func decode[T Element](raw []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = math.Float64frombits(binary.NativeEndian.Uint64(raw))
	case *float32:
		*p = math.Float32frombits(binary.NativeEndian.Uint32(raw))
	case *uint64:
		*p = binary.NativeEndian.Uint64(raw)
	case *bool:
		*p = raw[0] != 0
	}
	return v
}

func encode[T Element](raw []byte, v T) {
	switch x := any(v).(type) {
	case float64:
		binary.NativeEndian.PutUint64(raw, math.Float64bits(x))
	case float32:
		binary.NativeEndian.PutUint32(raw, math.Float32bits(x))
	case uint64:
		binary.NativeEndian.PutUint64(raw, x)
	case bool:
		if x {
			raw[0] = 1
		} else {
			raw[0] = 0
		}
	}
}
