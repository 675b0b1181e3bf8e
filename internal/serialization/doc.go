// Package serialization provides the .nda archive format for storing named
// arrays on disk.
//
// The .nda format is a simple binary container:
//
//	Format Structure:
//	  [64 bytes: Fixed header]
//	    0x00 Magic "NDAR"
//	    0x04 Version (uint32 LE)
//	    0x08 Flags (uint32 LE)
//	    0x10 Header size (uint64 LE)
//	    0x18 Data size (uint64 LE)
//	    0x20 SHA-256 of the data section (32 bytes)
//	  [Header: JSON metadata]
//	  [Array data: raw element bytes, every array 64-byte aligned]
//
// Element bytes are stored in the writer's native byte order, which the JSON
// header records; readers reject archives written with the other order.
//
// Example usage:
//
//	// Save
//	w, err := serialization.NewWriter("arrays.nda")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := w.WriteArrays(map[string]*ndarray.Array{"x": x}, nil); err != nil {
//	    log.Fatal(err)
//	}
//	w.Close()
//
//	// Load
//	r, err := serialization.Open("arrays.nda")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	x, err := r.Load("x")
package serialization
