package serialization

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// MmapReader provides memory-mapped access to .nda files.
// Opening only parses the header; array bytes are paged in by the OS on
// first access.
type MmapReader struct {
	file    *os.File
	mapping mmap.MMap // read-only
	archive *archive
	closed  bool
}

// Open maps the .nda file at path read-only and parses its header.
//
// Important: Always call Close() when done to unmap the file (use defer).
func Open(path string) (*MmapReader, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ndarray.ErrIO, err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: failed to stat file: %w", ndarray.ErrIO, err)
	}
	// Zero-length files cannot be mapped.
	if stat.Size() < FixedHeaderSize {
		_ = file.Close()
		return nil, fmt.Errorf("%w: file too small: %d bytes (minimum %d bytes required)", ndarray.ErrParse, stat.Size(), FixedHeaderSize)
	}

	mapping, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: mmap failed: %w", ndarray.ErrIO, err)
	}

	r := &MmapReader{file: file, mapping: mapping}
	if r.archive, err = parseArchive(mapping); err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

// Close unmaps and closes the file.
func (r *MmapReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	if r.mapping != nil {
		err = r.mapping.Unmap()
		r.mapping = nil
	}

	if closeErr := r.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	return err
}

// Header returns the file header.
func (r *MmapReader) Header() Header {
	return r.archive.header
}

// Metadata returns the custom metadata stored with the arrays.
func (r *MmapReader) Metadata() map[string]string {
	return r.archive.header.Metadata
}

// Flags returns the flags bitfield.
func (r *MmapReader) Flags() uint32 {
	return r.archive.flags
}

// Names returns the names of all arrays in the file, in stored order.
func (r *MmapReader) Names() []string {
	return r.archive.names()
}

// Info returns metadata about a specific array.
func (r *MmapReader) Info(name string) (*ArrayMeta, error) {
	return r.archive.info(name)
}

// Data returns a zero-copy slice of the array's bytes.
// The returned slice is valid only while the reader is open.
// WARNING: The data is read-only - writing to it will fault.
func (r *MmapReader) Data(name string) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	return r.archive.arrayData(name)
}

// Load copies the named array into a new ndarray.Array.
func (r *MmapReader) Load(name string) (*ndarray.Array, error) {
	if r.closed {
		return nil, ErrClosed
	}
	return r.archive.load(name)
}

// LoadAll loads every array in the file.
func (r *MmapReader) LoadAll() (map[string]*ndarray.Array, error) {
	if r.closed {
		return nil, ErrClosed
	}
	return r.archive.loadAll()
}

// VerifyChecksum recomputes the SHA-256 of the data section and compares it
// with the stored one. This reads every page of the data section.
func (r *MmapReader) VerifyChecksum() error {
	if r.closed {
		return ErrClosed
	}
	return r.archive.verifyChecksum()
}
