package ndarray

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// String renders the array as nested brackets, outermost axis first.
// Floats are printed with three decimals.
func (a *Array) String() string {
	if a.released {
		return "<released>"
	}
	var b strings.Builder
	a.format(&b, 0, 0, 0)
	return b.String()
}

// FormatElement renders the single element stored in raw.
func FormatElement(raw []byte, dt DataType) string {
	switch dt {
	case Float64, Float32:
		return strconv.FormatFloat(LoadFloat(raw, dt), 'f', 3, 64)
	case Uint64:
		return strconv.FormatUint(decode[uint64](raw), 10)
	case Bool:
		return strconv.FormatBool(raw[0] != 0)
	default:
		return "0x" + hex.EncodeToString(raw)
	}
}

func (a *Array) format(b *strings.Builder, axis, offset, indent int) {
	b.WriteByte('[')
	n := a.shape[axis]
	last := axis == len(a.shape)-1
	elemSize := ElementSize(a.dtype)

	for i := 0; i < n; i++ {
		off := offset + i*a.strides[axis]
		if last {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(FormatElement(a.data[off:off+elemSize], a.dtype))
			continue
		}
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", indent+1))
		}
		a.format(b, axis+1, off, indent+1)
	}
	b.WriteByte(']')
}
