package serialization

import (
	"errors"
	"strings"
	"testing"
)

// TestValidateArrayOffsets_NoOverlap verifies that valid layouts pass validation.
func TestValidateArrayOffsets_NoOverlap(t *testing.T) {
	arrays := []ArrayMeta{
		{Name: "a", Offset: 0, Size: 100},
		{Name: "b", Offset: 128, Size: 200},
		{Name: "c", Offset: 328, Size: 150},
		{Name: "empty", Offset: 478, Size: 0},
		{Name: "inside", Offset: 130, Size: 0}, // Empty arrays never overlap
	}

	if err := ValidateArrayOffsets(arrays, 500); err != nil {
		t.Errorf("Expected no error for valid arrays, got: %v", err)
	}
}

// TestValidateArrayOffsets_Errors detects malformed layouts.
func TestValidateArrayOffsets_Errors(t *testing.T) {
	tests := []struct {
		name     string
		arrays   []ArrayMeta
		dataSize int64
		want     error
		wantType string
	}{
		{
			name: "overlap",
			arrays: []ArrayMeta{
				{Name: "a", Offset: 0, Size: 100},
				{Name: "b", Offset: 99, Size: 100}, // Overlaps by 1 byte
			},
			dataSize: 200,
			want:     ErrOffsetOverlap,
			wantType: "offset_overlap",
		},
		{
			name:     "out of bounds",
			arrays:   []ArrayMeta{{Name: "a", Offset: 100, Size: 101}},
			dataSize: 200,
			want:     ErrOutOfBounds,
			wantType: "out_of_bounds",
		},
		{
			name:     "overflowing offset",
			arrays:   []ArrayMeta{{Name: "a", Offset: 1<<63 - 1, Size: 10}},
			dataSize: 200,
			want:     ErrOutOfBounds,
			wantType: "out_of_bounds",
		},
		{
			name:     "negative size",
			arrays:   []ArrayMeta{{Name: "a", Offset: 0, Size: -1}},
			dataSize: 200,
			want:     ErrNegativeOffset,
			wantType: "negative_offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArrayOffsets(tt.arrays, tt.dataSize)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got: %v", tt.want, err)
			}
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if valErr.Type != tt.wantType {
				t.Errorf("Expected type %q, got %q", tt.wantType, valErr.Type)
			}
		})
	}
}

// TestValidateArrayName rejects unsafe names.
func TestValidateArrayName(t *testing.T) {
	valid := []string{"x", "features", "layer.0.weight", "train_X"}
	for _, name := range valid {
		if err := ValidateArrayName(name); err != nil {
			t.Errorf("ValidateArrayName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "../etc/passwd", "a/b", `a\b`, "a\x00b", strings.Repeat("x", MaxArrayNameLen+1)}
	for _, name := range invalid {
		if err := ValidateArrayName(name); !errors.Is(err, ErrInvalidArrayName) {
			t.Errorf("ValidateArrayName(%q) = %v, want ErrInvalidArrayName", name, err)
		}
	}
}

// TestValidateArrayMeta checks dtype, shape and size consistency.
func TestValidateArrayMeta(t *testing.T) {
	if err := ValidateArrayMeta(ArrayMeta{Name: "m", DType: "float32", Shape: []int{2, 3}, Size: 24}); err != nil {
		t.Errorf("Expected valid meta, got: %v", err)
	}

	bad := []ArrayMeta{
		{Name: "dtype", DType: "int8", Shape: []int{2}, Size: 2},
		{Name: "rank", DType: "float64", Shape: []int{}, Size: 8},
		{Name: "negative", DType: "float64", Shape: []int{-2}, Size: 16},
		{Name: "size", DType: "uint64", Shape: []int{2, 2}, Size: 31},
		{Name: "huge", DType: "float64", Shape: []int{1 << 40, 1 << 40}, Size: 0},
	}
	for _, m := range bad {
		if err := ValidateArrayMeta(m); !errors.Is(err, ErrInvalidArrayMeta) {
			t.Errorf("ValidateArrayMeta(%s) = %v, want ErrInvalidArrayMeta", m.Name, err)
		}
	}
}

// TestValidateHeader runs the combined checks.
func TestValidateHeader(t *testing.T) {
	good := Header{
		ByteOrder: nativeByteOrder(),
		Arrays: []ArrayMeta{
			{Name: "a", DType: "bool", Shape: []int{4}, Offset: 0, Size: 4},
			{Name: "b", DType: "float64", Shape: []int{1}, Offset: 64, Size: 8},
		},
	}
	if err := ValidateHeader(&good, 72); err != nil {
		t.Fatalf("Expected valid header, got: %v", err)
	}

	dup := good
	dup.Arrays = []ArrayMeta{good.Arrays[0], good.Arrays[0]}
	if err := ValidateHeader(&dup, 72); !errors.Is(err, ErrInvalidArrayName) {
		t.Errorf("Expected duplicate name error, got: %v", err)
	}

	foreign := good
	foreign.ByteOrder = "middle"
	if err := ValidateHeader(&foreign, 72); !errors.Is(err, ErrByteOrder) {
		t.Errorf("Expected ErrByteOrder, got: %v", err)
	}

	if err := ValidateHeader(&good, 70); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds for truncated data, got: %v", err)
	}
}

// TestValidationErrorMessage checks message formatting.
func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Type: "offset_overlap", Array: "a", Array2: "b", Details: "regions overlap"}
	want := `offset_overlap: arrays "a" and "b": regions overlap`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
