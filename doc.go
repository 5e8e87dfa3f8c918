// Package crcgo computes cyclic redundancy checks for any CRC of width 1 to
// 32 bits described by the Rocksoft model parameters.
//
// # Quick Start
//
//	alg := crcgo.Algorithm{
//	    Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF,
//	    RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF,
//	}
//	c := crcgo.New(&alg)
//
//	sum := c.Checksum([]byte("123456789")) // 0xCBF43926
//
// Named presets live in package catalog:
//
//	c := crcgo.New(catalog.CRC32ISCSI)
//
// # Streaming
//
// A Digest accumulates input and is consumed by Finalize. Chunking never
// changes the result:
//
//	d := c.Digest()
//	d.Update(chunk1)
//	d.Update(chunk2)
//	sum := d.Finalize()
//
// For APIs that expect hash.Hash32, use NewHash. Its Sum32 does not consume
// the state and Reset makes it reusable.
//
// # Engine Model
//
// New builds a 256-entry table once per algorithm. The register is kept in
// an internal form: right-aligned and reflected for RefIn algorithms,
// top-aligned otherwise. The alignment is done up front by Digest and undone
// by Finalize, so the per-byte loop is one lookup, one shift and one XOR
// with no width or reflection branches.
//
// # Kernels
//
// Reflected 32-bit CRCs over the IEEE and Castagnoli polynomials run on CPU
// CRC instructions when available. Set CRCGO_KERNEL=generic to force the
// table loop. Both kernels produce identical results.
//
// # Restricted Targets
//
// Building with the crcgo_restricted tag makes every engine re-check each
// input byte with RangeValidator. A rejected byte short-circuits the
// computation to SentinelRegister. General-purpose builds use NoopValidator
// and pay nothing.
//
// # Concurrency
//
// CRC values are immutable and safe for concurrent use. Digest and Hash are
// not; give each goroutine its own.
package crcgo
