package testutil

import "math/bits"

// Params mirrors the Rocksoft model parameters of a CRC.
type Params struct {
	Width  uint8
	Poly   uint32
	Init   uint32
	RefIn  bool
	RefOut bool
	XorOut uint32
}

// Bitwise computes a CRC one bit at a time, straight from the definition.
// It is slow and exists only as ground truth.
func Bitwise(p Params, data []byte) uint32 {
	w := uint(p.Width)
	mask := uint64(1)<<w - 1
	reg := uint64(p.Init) & mask

	for _, b := range data {
		if p.RefIn {
			b = bits.Reverse8(b)
		}
		for i := 7; i >= 0; i-- {
			bit := uint64(b>>uint(i)) & 1
			top := (reg >> (w - 1)) & 1
			reg = (reg << 1) & mask
			if top^bit != 0 {
				reg ^= uint64(p.Poly)
			}
		}
	}

	out := uint32(reg)
	if p.RefOut {
		out = bits.Reverse32(out) >> (32 - w)
	}
	return out ^ p.XorOut
}
