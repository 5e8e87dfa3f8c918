package crcgo

import "fmt"

// ErrInvalidWidth indicates a width outside 1..32.
type ErrInvalidWidth struct {
	Width uint8
}

func (e *ErrInvalidWidth) Error() string {
	return fmt.Sprintf("invalid width: %d (must be 1..32)", e.Width)
}

// ErrValueOverflow indicates a parameter with bits set above the width.
type ErrValueOverflow struct {
	Field string
	Value uint32
	Width uint8
}

func (e *ErrValueOverflow) Error() string {
	return fmt.Sprintf("%s 0x%x does not fit in %d bits", e.Field, e.Value, e.Width)
}

// ErrCheckMismatch is returned by SelfTest when the engine's checksum of
// "123456789" differs from the algorithm's Check value.
type ErrCheckMismatch struct {
	Name     string
	Expected uint32
	Actual   uint32
}

func (e *ErrCheckMismatch) Error() string {
	return fmt.Sprintf("check mismatch for %q: expected 0x%08x, got 0x%08x", e.Name, e.Expected, e.Actual)
}
