// Package csvio reads and writes two-dimensional arrays as delimited text.
//
// File format:
//
//	rows,cols
//	v00,v01,...
//	v10,v11,...
//
// The header gives the matrix extents. The rows*cols values follow in
// row-major order, separated by commas, whitespace or newlines in any mix.
package csvio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Load reads the matrix stored at path as an array of dtype.
func Load(path string, dtype ndarray.DataType) (*ndarray.Array, error) {
	file, err := os.Open(path) //nolint:gosec // G304: User-provided path is intentional
	if err != nil {
		return nil, ndarray.Errorf("csv load", ndarray.ErrIO, "%v", err)
	}
	defer func() { _ = file.Close() }()

	return Read(file, dtype)
}

// Read parses a matrix from r. dtype must be Float64, Float32 or Uint64.
func Read(r io.Reader, dtype ndarray.DataType) (*ndarray.Array, error) {
	if !dtype.Numeric() {
		return nil, ndarray.Errorf("csv read", ndarray.ErrUnsupportedDtype, "%s", dtype)
	}

	tokens := &tokenizer{reader: newReader(r)}

	rows, err := tokens.extent("rows")
	if err != nil {
		return nil, err
	}
	cols, err := tokens.extent("cols")
	if err != nil {
		return nil, err
	}

	a, err := ndarray.New(ndarray.Shape{rows, cols}, dtype)
	if err != nil {
		return nil, err
	}

	bits := 64
	if dtype == ndarray.Float32 {
		bits = 32
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			tok, err := tokens.next()
			if errors.Is(err, io.EOF) {
				return nil, ndarray.Errorf("csv read", ndarray.ErrParse, "expected %d values, got %d", rows*cols, i*cols+j)
			}
			if err != nil {
				return nil, err
			}

			if dtype == ndarray.Uint64 {
				v, perr := strconv.ParseUint(tok, 10, 64)
				if perr != nil {
					return nil, ndarray.Errorf("csv read", ndarray.ErrParse, "value (%d,%d): %v", i, j, perr)
				}
				err = ndarray.Set(a, v, i, j)
			} else {
				v, perr := strconv.ParseFloat(tok, bits)
				if perr != nil {
					return nil, ndarray.Errorf("csv read", ndarray.ErrParse, "value (%d,%d): %v", i, j, perr)
				}
				err = a.SetFloat(v, i, j)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	if tok, err := tokens.next(); err == nil {
		return nil, ndarray.Errorf("csv read", ndarray.ErrParse, "trailing value %q after %d values", tok, rows*cols)
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}

	return a, nil
}

// Save writes a to path, truncating any existing file.
func Save(path string, a *ndarray.Array) error {
	file, err := os.Create(path) //nolint:gosec // G304: User-provided path is intentional
	if err != nil {
		return ndarray.Errorf("csv save", ndarray.ErrIO, "%v", err)
	}

	if err := Write(file, a); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return ndarray.Errorf("csv save", ndarray.ErrIO, "%v", err)
	}
	return nil
}

// Write emits a in the format Read accepts. a must be a numeric matrix.
// Floats use the shortest representation that parses back exactly.
func Write(w io.Writer, a *ndarray.Array) error {
	if err := a.Check("csv write"); err != nil {
		return err
	}
	if a.Rank() != 2 {
		return ndarray.Errorf("csv write", ndarray.ErrRank, "only 2D arrays supported, got %dD", a.Rank())
	}
	if !a.DType().Numeric() {
		return ndarray.Errorf("csv write", ndarray.ErrUnsupportedDtype, "%s", a.DType())
	}

	rows, cols := a.Dim(0), a.Dim(1)
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{strconv.Itoa(rows), strconv.Itoa(cols)}); err != nil {
		return ndarray.Errorf("csv write", ndarray.ErrIO, "%v", err)
	}

	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := range record {
			v, err := formatValue(a, i, j)
			if err != nil {
				return err
			}
			record[j] = v
		}
		if err := cw.Write(record); err != nil {
			return ndarray.Errorf("csv write", ndarray.ErrIO, "%v", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return ndarray.Errorf("csv write", ndarray.ErrIO, "%v", err)
	}
	return nil
}

func formatValue(a *ndarray.Array, i, j int) (string, error) {
	if a.DType() == ndarray.Uint64 {
		v, err := ndarray.Get[uint64](a, i, j)
		return strconv.FormatUint(v, 10), err
	}

	v, err := a.GetFloat(i, j)
	if a.DType() == ndarray.Float32 {
		return strconv.FormatFloat(v, 'g', -1, 32), err
	}
	return strconv.FormatFloat(v, 'g', -1, 64), err
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true
	return reader
}

// tokenizer yields individual values from CSV records, splitting each field
// further on whitespace.
type tokenizer struct {
	reader  *csv.Reader
	pending []string
}

func (t *tokenizer) next() (string, error) {
	for len(t.pending) == 0 {
		record, err := t.reader.Read()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", ndarray.Errorf("csv read", ndarray.ErrParse, "%v", err)
		}
		for _, field := range record {
			t.pending = append(t.pending, strings.Fields(field)...)
		}
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

func (t *tokenizer) extent(name string) (int, error) {
	tok, err := t.next()
	if errors.Is(err, io.EOF) {
		return 0, ndarray.Errorf("csv read", ndarray.ErrParse, "missing %s in header", name)
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(tok, 10, 31)
	if err != nil {
		return 0, ndarray.Errorf("csv read", ndarray.ErrParse, "header %s %q: %v", name, tok, err)
	}
	return int(n), nil
}
