// Package ndarray provides the core array container, dtype registry and
// indexing engine for the ndarray engine.
package ndarray

import "fmt"

// Element is a constraint for the Go types that back a DataType.
type Element interface {
	float64 | float32 | uint64 | bool
}

// DataType is the runtime element tag of an Array.
//
// Tag values are single-character codes ('d', 'f', 'i', 'b'). Any other byte
// is an unrecognized tag and only gets the raw-width fallback of ElementSize.
type DataType uint8

// Supported data types.
const (
	Float64 DataType = 'd'
	Float32 DataType = 'f'
	Uint64  DataType = 'i'
	// Bool is the output type of comparisons.
	Bool DataType = 'b'
)

// ElementSize returns the byte size of one element of dtype.
//
// Unrecognized tags fall back to a raw byte width equal to the tag value when
// it is smaller than 8, and 1 otherwise. The fallback only exists so that
// construction does not fail hard; no arithmetic accepts such arrays.
func ElementSize(dt DataType) int {
	switch dt {
	case Float64, Uint64:
		return 8
	case Float32:
		return 4
	case Bool:
		return 1
	default:
		if dt < 8 {
			return int(dt)
		}
		return 1
	}
}

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	return ElementSize(dt)
}

// Valid reports whether dt is one of the named data types.
func (dt DataType) Valid() bool {
	switch dt {
	case Float64, Float32, Uint64, Bool:
		return true
	default:
		return false
	}
}

// Numeric reports whether arithmetic is defined for dt.
func (dt DataType) Numeric() bool {
	switch dt {
	case Float64, Float32, Uint64:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Uint64:
		return "uint64"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("raw%d", dt.Size())
	}
}

// ParseDataType converts a dtype name (or its single-character tag) to a DataType.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "float64", "d":
		return Float64, nil
	case "float32", "f":
		return Float32, nil
	case "uint64", "i":
		return Uint64, nil
	case "bool", "b":
		return Bool, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDtype, s)
	}
}

// DataTypeOf returns the DataType backing the Go type T.
func DataTypeOf[T Element]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case uint64:
		return Uint64
	default:
		return Bool
	}
}
