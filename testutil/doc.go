// Package testutil provides testing utilities for crcgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random byte generator and a bit-at-a-time reference
// CRC used as ground truth for the table-driven engine.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Bytes(4096)
//	parts := rng.Split(data, 5) // random chunking, empty chunks allowed
//
// # Reference Checksums
//
//	want := testutil.Bitwise(testutil.Params{Width: 32, Poly: 0x04C11DB7, ...}, data)
package testutil
