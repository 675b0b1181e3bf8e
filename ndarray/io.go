// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/csvio"
	"github.com/born-ml/ndarray/internal/serialization"
)

// LoadCSV reads a matrix from a text file whose first record is "rows,cols".
func LoadCSV(path string, dtype DataType) (*Array, error) {
	return csvio.Load(path, dtype)
}

// SaveCSV writes a numeric matrix in the format LoadCSV reads.
func SaveCSV(path string, a *Array) error {
	return csvio.Save(path, a)
}

// Archive is an open, memory-mapped .nda file.
type Archive = serialization.MmapReader

// SaveArchive writes named arrays and optional metadata to a .nda file.
func SaveArchive(path string, arrays map[string]*Array, metadata map[string]string) error {
	w, err := serialization.NewWriter(path)
	if err != nil {
		return err
	}
	if err := w.WriteArrays(arrays, metadata); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// OpenArchive maps a .nda file for reading. Close the archive when done.
func OpenArchive(path string) (*Archive, error) {
	return serialization.Open(path)
}
