package serialization

import (
	"encoding/binary"
	"time"
)

// Format constants.
const (
	MagicBytes      = "NDAR"
	FormatVersion   = 1
	Alignment       = 64   // Every array starts on a 64-byte boundary of the data section
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size (32 bytes)
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
)

// Flags for the .nda format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
)

// Byte order names recorded in the header.
const (
	LittleEndian = "little"
	BigEndian    = "big"
)

// Header represents the JSON header in a .nda file.
type Header struct {
	FormatVersion int               `json:"format_version"` // Version of the .nda format
	ByteOrder     string            `json:"byte_order"`     // Element byte order ("little" or "big")
	CreatedAt     time.Time         `json:"created_at"`     // When the file was created
	Arrays        []ArrayMeta       `json:"arrays"`         // Array metadata, sorted by name
	Metadata      map[string]string `json:"metadata"`       // Custom metadata
}

// ArrayMeta describes an array in the .nda file.
type ArrayMeta struct {
	Name   string `json:"name"`   // Array name (e.g., "features")
	DType  string `json:"dtype"`  // Data type (e.g., "float32", "float64")
	Shape  []int  `json:"shape"`  // Array shape
	Offset int64  `json:"offset"` // Offset in the data section (bytes from start of array data)
	Size   int64  `json:"size"`   // Size in bytes
}

// nativeByteOrder returns the byte order name of this machine.
func nativeByteOrder() string {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return LittleEndian
	}
	return BigEndian
}

// align rounds n up to the next multiple of Alignment.
func align(n int64) int64 {
	return (n + Alignment - 1) / Alignment * Alignment
}
