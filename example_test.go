package crcgo_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/crcgo"
)

var crc32ISOHDLC = crcgo.Algorithm{
	Name:   "CRC-32/ISO-HDLC",
	Width:  32,
	Poly:   0x04C11DB7,
	Init:   0xFFFFFFFF,
	RefIn:  true,
	RefOut: true,
	XorOut: 0xFFFFFFFF,
	Check:  0xCBF43926,
}

// ExampleCRC_Checksum computes a checksum in one shot.
func ExampleCRC_Checksum() {
	c := crcgo.New(&crc32ISOHDLC)

	fmt.Printf("0x%08x\n", c.Checksum([]byte("123456789")))
	// Output: 0xcbf43926
}

// ExampleCRC_Digest feeds a checksum chunk by chunk.
func ExampleCRC_Digest() {
	c := crcgo.New(&crc32ISOHDLC)

	d := c.Digest()
	d.Update([]byte("1234"))
	d.Update([]byte("56789"))

	fmt.Printf("0x%08x\n", d.Finalize())
	// Output: 0xcbf43926
}

// ExampleCRC_NewHash uses the engine wherever a hash.Hash32 is expected.
func ExampleCRC_NewHash() {
	h := crcgo.New(&crc32ISOHDLC).NewHash()

	_, _ = io.Copy(h, strings.NewReader("The quick brown fox jumps over the lazy dog"))

	fmt.Printf("%x\n", h.Sum(nil))
	// Output: 414fa339
}

// ExampleAlgorithm_Validate checks user-supplied parameters before use.
func ExampleAlgorithm_Validate() {
	alg := crcgo.Algorithm{Width: 16, Poly: 0x18005}

	fmt.Println(alg.Validate())
	// Output: poly 0x18005 does not fit in 16 bits
}
