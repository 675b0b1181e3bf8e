package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// archive is a parsed view over the bytes of a complete .nda file.
type archive struct {
	header   Header
	flags    uint32
	data     []byte // data section only
	checksum [32]byte
}

// parseArchive validates the fixed and JSON headers of file and slices out
// the data section. The returned archive aliases file.
func parseArchive(file []byte) (*archive, error) {
	size := int64(len(file))
	if size < FixedHeaderSize {
		return nil, fmt.Errorf("%w: file too small: %d bytes (minimum %d bytes required)", ndarray.ErrParse, size, FixedHeaderSize)
	}

	if string(file[0:4]) != MagicBytes {
		return nil, fmt.Errorf("%w: %w", ndarray.ErrParse, ErrInvalidMagic)
	}

	version := binary.LittleEndian.Uint32(file[4:8])
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %w: got %d, expected %d", ndarray.ErrParse, ErrUnsupportedVersion, version, FormatVersion)
	}

	a := &archive{flags: binary.LittleEndian.Uint32(file[8:12])}

	headerSize := binary.LittleEndian.Uint64(file[16:24])
	if headerSize > MaxHeaderSize {
		return nil, fmt.Errorf("%w: %w", ndarray.ErrParse, ErrHeaderTooLarge)
	}
	dataSize := binary.LittleEndian.Uint64(file[24:32])
	copy(a.checksum[:], file[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerEnd := FixedHeaderSize + int64(headerSize) //nolint:gosec // G115: bounded by MaxHeaderSize
	if headerEnd > size {
		return nil, fmt.Errorf("%w: header extends beyond file: header_end=%d, file_size=%d", ndarray.ErrParse, headerEnd, size)
	}
	if err := json.Unmarshal(file[FixedHeaderSize:headerEnd], &a.header); err != nil {
		return nil, fmt.Errorf("%w: failed to parse header JSON: %w", ndarray.ErrParse, err)
	}

	dataOffset := align(headerEnd)
	if dataOffset > size || dataSize > uint64(size-dataOffset) {
		return nil, fmt.Errorf("%w: data section of %d bytes at %d exceeds file size %d", ndarray.ErrParse, dataSize, dataOffset, size)
	}
	a.data = file[dataOffset : dataOffset+int64(dataSize)] //nolint:gosec // G115: bounded by file size

	if err := ValidateHeader(&a.header, int64(len(a.data))); err != nil {
		return nil, fmt.Errorf("%w: header validation failed: %w", ndarray.ErrParse, err)
	}

	return a, nil
}

func (a *archive) names() []string {
	names := make([]string, len(a.header.Arrays))
	for i, m := range a.header.Arrays {
		names[i] = m.Name
	}
	return names
}

func (a *archive) info(name string) (*ArrayMeta, error) {
	for i := range a.header.Arrays {
		if a.header.Arrays[i].Name == name {
			return &a.header.Arrays[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func (a *archive) arrayData(name string) ([]byte, error) {
	meta, err := a.info(name)
	if err != nil {
		return nil, err
	}
	end := meta.Offset + meta.Size
	return a.data[meta.Offset:end:end], nil
}

// load copies the named array out of the archive.
func (a *archive) load(name string) (*ndarray.Array, error) {
	meta, err := a.info(name)
	if err != nil {
		return nil, err
	}

	dtype, err := ndarray.ParseDataType(meta.DType)
	if err != nil {
		return nil, err
	}
	arr, err := ndarray.New(ndarray.Shape(meta.Shape), dtype)
	if err != nil {
		return nil, fmt.Errorf("array %q: %w", name, err)
	}

	data, err := a.arrayData(name)
	if err != nil {
		return nil, err
	}
	copy(arr.Data(), data)
	return arr, nil
}

func (a *archive) loadAll() (map[string]*ndarray.Array, error) {
	arrays := make(map[string]*ndarray.Array, len(a.header.Arrays))
	for _, meta := range a.header.Arrays {
		arr, err := a.load(meta.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to load array %s: %w", meta.Name, err)
		}
		arrays[meta.Name] = arr
	}
	return arrays, nil
}

func (a *archive) verifyChecksum() error {
	return ValidateChecksum(ComputeChecksum(a.data), a.checksum)
}

// Decode reads a complete archive from reader, verifies its checksum and
// returns every array it holds.
func Decode(reader io.Reader) (map[string]*ndarray.Array, Header, error) {
	file, err := io.ReadAll(reader)
	if err != nil {
		return nil, Header{}, fmt.Errorf("%w: %w", ndarray.ErrIO, err)
	}

	a, err := parseArchive(file)
	if err != nil {
		return nil, Header{}, err
	}
	if err := a.verifyChecksum(); err != nil {
		return nil, Header{}, err
	}

	arrays, err := a.loadAll()
	if err != nil {
		return nil, Header{}, err
	}
	return arrays, a.header, nil
}
