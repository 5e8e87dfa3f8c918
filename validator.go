package crcgo

// ByteValidator screens input bytes before they reach the lookup table.
//
// On general-purpose platforms the NoopValidator is used and the engine runs
// an unchecked loop. Restricted targets, where the toolchain cannot prove
// that a loaded byte stays within 0..255, build with the crcgo_restricted tag
// to get the RangeValidator by default. The first rejected byte stops the
// computation and leaves the register at SentinelRegister.
type ByteValidator interface {
	ValidByte(b byte) bool
}

// SentinelRegister is the register value a computation short-circuits to
// when a ByteValidator rejects an input byte.
const SentinelRegister uint32 = 0

// NoopValidator accepts every byte. The engine recognizes it and skips
// validation entirely.
type NoopValidator struct{}

// ValidByte implements ByteValidator.
func (NoopValidator) ValidByte(byte) bool { return true }

// RangeValidator re-checks that each byte, widened to a signed integer, lies
// within 0..255.
type RangeValidator struct{}

// ValidByte implements ByteValidator.
func (RangeValidator) ValidByte(b byte) bool {
	v := widen(b)
	return v >= 0 && v <= 0xFF
}

//go:noinline
func widen(b byte) int32 {
	return int32(b)
}

func isNoopValidator(v ByteValidator) bool {
	switch v.(type) {
	case NoopValidator, *NoopValidator:
		return true
	default:
		return false
	}
}
