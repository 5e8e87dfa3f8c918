package crcgo

// Algorithm describes a CRC variant whose register fits in 32 bits.
//
// The parameters follow the Rocksoft model: Poly is given in normal
// (MSB-first) form, right-aligned in Width bits, and Init is the register
// value before reflection is applied.
//
// Algorithm values are immutable once handed to New. The engine keeps a
// reference, not a copy.
type Algorithm struct {
	// Name is informational (e.g. "CRC-32/ISO-HDLC").
	Name string

	// Width is the checksum width in bits, 1..32.
	Width uint8

	// Poly is the generator polynomial without its implicit top bit.
	Poly uint32

	// Init is the initial register value.
	Init uint32

	// RefIn processes each input byte least-significant bit first.
	RefIn bool

	// RefOut reflects the final register before XorOut is applied.
	RefOut bool

	// XorOut is XORed into the final result.
	XorOut uint32

	// Check is the checksum of the ASCII string "123456789".
	// Zero means unknown.
	Check uint32
}

// Mask returns a value with the low Width bits set.
func (a *Algorithm) Mask() uint32 {
	if a.Width >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<a.Width - 1
}

// Validate reports whether the parameters are well formed.
//
// The engine itself never validates; callers accepting parameters from
// configuration or user input should call Validate before New.
func (a *Algorithm) Validate() error {
	if a.Width == 0 || a.Width > 32 {
		return &ErrInvalidWidth{Width: a.Width}
	}

	mask := a.Mask()
	if a.Poly&^mask != 0 {
		return &ErrValueOverflow{Field: "poly", Value: a.Poly, Width: a.Width}
	}
	if a.Init&^mask != 0 {
		return &ErrValueOverflow{Field: "init", Value: a.Init, Width: a.Width}
	}
	if a.XorOut&^mask != 0 {
		return &ErrValueOverflow{Field: "xorout", Value: a.XorOut, Width: a.Width}
	}
	if a.Check&^mask != 0 {
		return &ErrValueOverflow{Field: "check", Value: a.Check, Width: a.Width}
	}

	return nil
}

// HexDigits returns the number of hex digits needed to print a checksum.
func (a *Algorithm) HexDigits() int {
	return (int(a.Width) + 3) / 4
}
