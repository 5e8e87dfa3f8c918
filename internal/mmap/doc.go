// Package mmap maps files read-only into memory so their contents can be
// checksummed without copying through read buffers.
//
//	m, err := mmap.Open("image.bin", mmap.AccessSequential)
//	if err != nil { ... }
//	defer m.Close()
//
//	sum := c.Checksum(m.Bytes())
//
// Unix systems use mmap(2) and madvise(2). Windows uses
// CreateFileMapping/MapViewOfFile, where access hints are ignored. Other
// platforms read the file into memory.
//
// Bytes must not be used after Close returns.
package mmap
