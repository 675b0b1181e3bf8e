package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Writer writes arrays in .nda format.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates a new .nda file writer, truncating any existing file.
func NewWriter(path string) (*Writer, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create file: %w", ndarray.ErrIO, err)
	}

	return &Writer{file: file}, nil
}

// WriteArrays writes arrays and metadata to the file.
// Arrays are stored in name order, so equal inputs produce identical files
// apart from the creation time.
func (w *Writer) WriteArrays(arrays map[string]*ndarray.Array, metadata map[string]string) error {
	if w.closed {
		return ErrClosed
	}
	return Encode(w.file, arrays, metadata)
}

// Close closes the writer and the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// Encode writes a complete .nda archive to writer.
// This is useful for writing to buffers or network connections.
func Encode(writer io.Writer, arrays map[string]*ndarray.Array, metadata map[string]string) error {
	names := make([]string, 0, len(arrays))
	for name, a := range arrays {
		if err := ValidateArrayName(name); err != nil {
			return err
		}
		if err := a.Check("encode"); err != nil {
			return err
		}
		if !a.DType().Valid() {
			return ndarray.Errorf("encode", ndarray.ErrUnsupportedDtype, "array %q is %s", name, a.DType())
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion: FormatVersion,
		ByteOrder:     nativeByteOrder(),
		CreatedAt:     time.Now().UTC(),
		Arrays:        make([]ArrayMeta, 0, len(arrays)),
		Metadata:      metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	// Calculate aligned array offsets.
	var dataSize int64
	for _, name := range names {
		a := arrays[name]
		offset := align(dataSize)
		size := int64(a.ByteSize())

		header.Arrays = append(header.Arrays, ArrayMeta{
			Name:   name,
			DType:  a.DType().String(),
			Shape:  []int(a.Shape()),
			Offset: offset,
			Size:   size,
		})
		dataSize = offset + size
	}

	// Assemble the data section; gaps stay zero.
	data := make([]byte, dataSize)
	for i, name := range names {
		copy(data[header.Arrays[i].Offset:], arrays[name].Data())
	}
	checksum := ComputeChecksum(data)

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	fixedHeader := make([]byte, FixedHeaderSize)

	// 0x00-0x03: Magic bytes "NDAR"
	copy(fixedHeader[0:4], MagicBytes)

	// 0x04-0x07: Version
	binary.LittleEndian.PutUint32(fixedHeader[4:8], uint32(FormatVersion))

	// 0x08-0x0B: Flags
	flags := uint32(0)
	if len(metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixedHeader[8:12], flags)

	// 0x0C-0x0F: Reserved (0)

	// 0x10-0x17: Header size
	binary.LittleEndian.PutUint64(fixedHeader[16:24], uint64(len(headerJSON)))

	// 0x18-0x1F: Data size
	binary.LittleEndian.PutUint64(fixedHeader[24:32], uint64(dataSize)) //nolint:gosec // G115: dataSize is non-negative

	// 0x20-0x3F: SHA-256 checksum
	copy(fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := writer.Write(fixedHeader); err != nil {
		return fmt.Errorf("%w: failed to write fixed header: %w", ndarray.ErrIO, err)
	}
	if _, err := writer.Write(headerJSON); err != nil {
		return fmt.Errorf("%w: failed to write header JSON: %w", ndarray.ErrIO, err)
	}

	// Pad so the data section starts on an aligned boundary.
	headerEnd := int64(FixedHeaderSize + len(headerJSON))
	if padding := align(headerEnd) - headerEnd; padding > 0 {
		if _, err := writer.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("%w: failed to write padding: %w", ndarray.ErrIO, err)
		}
	}

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("%w: failed to write array data: %w", ndarray.ErrIO, err)
	}

	return nil
}
