package serialization

import (
	"fmt"
	"sort"
	"strings"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Validation limits for security and resource protection.
const (
	MaxHeaderSize   = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxArrayCount   = 100_000           // Maximum number of arrays in a file
	MaxArrayNameLen = 4096              // Maximum array name length
)

// ValidateArrayOffsets checks for overlapping array regions and out-of-bounds access.
// Malformed files must never let one array read another array's bytes or
// anything past the data section.
func ValidateArrayOffsets(arrays []ArrayMeta, dataSize int64) error {
	if len(arrays) > MaxArrayCount {
		return &ValidationError{
			Type:    "too_many_arrays",
			Details: fmt.Sprintf("got %d, max %d", len(arrays), MaxArrayCount),
			Err:     ErrTooManyArrays,
		}
	}

	for _, a := range arrays {
		if a.Offset < 0 || a.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Array:   a.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", a.Offset, a.Size),
				Err:     ErrNegativeOffset,
			}
		}

		// Written as a subtraction so a huge offset cannot overflow.
		if a.Offset > dataSize || a.Size > dataSize-a.Offset {
			return &ValidationError{
				Type:    "out_of_bounds",
				Array:   a.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", a.Offset, a.Size, dataSize),
				Err:     ErrOutOfBounds,
			}
		}
	}

	// Empty arrays read nothing and may share an offset with anything.
	sorted := make([]ArrayMeta, 0, len(arrays))
	for _, a := range arrays {
		if a.Size > 0 {
			sorted = append(sorted, a)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		if prev.Offset+prev.Size > next.Offset {
			return &ValidationError{
				Type:    "offset_overlap",
				Array:   prev.Name,
				Array2:  next.Name,
				Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
					prev.Offset, prev.Offset+prev.Size, next.Offset, next.Offset+next.Size),
				Err: ErrOffsetOverlap,
			}
		}
	}

	return nil
}

// ValidateArrayName rejects empty, oversized and path-like names.
func ValidateArrayName(name string) error {
	invalid := func(details string) error {
		return &ValidationError{Type: "invalid_name", Array: name, Details: details, Err: ErrInvalidArrayName}
	}

	switch {
	case name == "":
		return invalid("empty name")
	case len(name) > MaxArrayNameLen:
		return invalid(fmt.Sprintf("length %d > max %d", len(name), MaxArrayNameLen))
	case strings.Contains(name, ".."):
		return invalid("contains '..' (path traversal attempt)")
	case strings.ContainsAny(name, "/\\"):
		return invalid("contains path separator (/ or \\)")
	case strings.Contains(name, "\x00"):
		return invalid("contains null byte")
	}
	return nil
}

// ValidateArrayMeta checks that dtype, shape and size describe each other.
func ValidateArrayMeta(m ArrayMeta) error {
	invalid := func(details string) error {
		return &ValidationError{Type: "invalid_meta", Array: m.Name, Details: details, Err: ErrInvalidArrayMeta}
	}

	dt, err := ndarray.ParseDataType(m.DType)
	if err != nil {
		return invalid(fmt.Sprintf("unknown dtype %q", m.DType))
	}
	shape := ndarray.Shape(m.Shape)
	if err := shape.Validate(); err != nil {
		return invalid(err.Error())
	}

	// Guard the product against overflow before comparing with Size.
	want := int64(dt.Size())
	for _, d := range shape {
		if d > 0 && want > MaxArrayBytes/int64(d) {
			return invalid(fmt.Sprintf("shape %v too large", shape))
		}
		want *= int64(d)
	}
	if want != m.Size {
		return invalid(fmt.Sprintf("shape %v of %s needs %d bytes, header says %d", shape, dt, want, m.Size))
	}
	return nil
}

// MaxArrayBytes bounds a single array's size.
const MaxArrayBytes = ndarray.MaxByteSize

// ValidateHeader performs comprehensive header validation.
func ValidateHeader(h *Header, dataSize int64) error {
	if len(h.Arrays) > MaxArrayCount {
		return &ValidationError{
			Type:    "too_many_arrays",
			Details: fmt.Sprintf("got %d, max %d", len(h.Arrays), MaxArrayCount),
			Err:     ErrTooManyArrays,
		}
	}
	if h.ByteOrder != nativeByteOrder() {
		return &ValidationError{
			Type:    "byte_order",
			Details: fmt.Sprintf("archive is %q, machine is %q", h.ByteOrder, nativeByteOrder()),
			Err:     ErrByteOrder,
		}
	}

	seen := make(map[string]bool, len(h.Arrays))
	for _, a := range h.Arrays {
		if err := ValidateArrayName(a.Name); err != nil {
			return err
		}
		if seen[a.Name] {
			return &ValidationError{Type: "duplicate_name", Array: a.Name, Details: "name appears twice", Err: ErrInvalidArrayName}
		}
		seen[a.Name] = true

		if err := ValidateArrayMeta(a); err != nil {
			return err
		}
	}

	return ValidateArrayOffsets(h.Arrays, dataSize)
}
