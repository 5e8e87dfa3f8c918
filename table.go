package crcgo

import "math/bits"

// Table is a byte-wise lookup table for a 32-bit CRC register.
//
// Entry i holds the register contribution of byte value i after eight
// shift/XOR steps. For reflected algorithms the entries are right-aligned;
// otherwise they are aligned to the top of the register.
type Table [256]uint32

// BuildTable computes the lookup table for the given width, polynomial and
// input reflection.
//
// BuildTable is pure: equal arguments always produce identical tables. It
// performs no validation; a polynomial wider than width yields a consistent
// but non-standard table.
func BuildTable(width uint8, poly uint32, reflect bool) *Table {
	var t Table

	shift := 32 - uint(width)

	if reflect {
		// LSB-first processing with the reflected polynomial avoids
		// reversing every input byte.
		rpoly := bits.Reverse32(poly) >> shift
		for i := range t {
			v := uint32(i)
			for range 8 {
				if v&1 != 0 {
					v = v>>1 ^ rpoly
				} else {
					v >>= 1
				}
			}
			t[i] = v
		}
		return &t
	}

	apoly := poly << shift
	for i := range t {
		v := uint32(i) << 24
		for range 8 {
			if v&0x80000000 != 0 {
				v = v<<1 ^ apoly
			} else {
				v <<= 1
			}
		}
		t[i] = v
	}

	return &t
}
