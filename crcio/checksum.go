package crcio

import (
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/crcgo"
)

// Writer wraps an io.Writer and computes a running checksum of everything
// written through it.
type Writer struct {
	w    io.Writer
	hash *crcgo.Hash
}

// NewWriter creates a new checksumming writer.
func NewWriter(w io.Writer, c *crcgo.CRC) *Writer {
	return &Writer{
		w:    w,
		hash: c.NewHash(),
	}
}

// Write implements io.Writer. Only bytes accepted by the underlying writer
// are checksummed.
func (cw *Writer) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if n > 0 {
		_, _ = cw.hash.Write(p[:n])
	}
	return n, err
}

// Sum returns the current checksum value.
func (cw *Writer) Sum() uint32 {
	return cw.hash.Sum32()
}

// Reset resets the checksum to initial state.
func (cw *Writer) Reset() {
	cw.hash.Reset()
}

// Reader wraps an io.Reader and computes a running checksum of everything
// read through it.
type Reader struct {
	r    io.Reader
	hash *crcgo.Hash
}

// NewReader creates a new checksumming reader.
func NewReader(r io.Reader, c *crcgo.CRC) *Reader {
	return &Reader{
		r:    r,
		hash: c.NewHash(),
	}
}

// Read implements io.Reader.
func (cr *Reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		_, _ = cr.hash.Write(p[:n])
	}
	return n, err
}

// Sum returns the current checksum value.
func (cr *Reader) Sum() uint32 {
	return cr.hash.Sum32()
}

// Reset resets the checksum to initial state.
func (cr *Reader) Reset() {
	cr.hash.Reset()
}

// Verify checks if the computed checksum matches the expected value.
func (cr *Reader) Verify(expected uint32) error {
	return compare(expected, cr.Sum())
}

// Verify checks data against an expected checksum.
func Verify(c *crcgo.CRC, data []byte, expected uint32) error {
	return compare(expected, c.Checksum(data))
}

func compare(expected, actual uint32) error {
	if actual != expected {
		return &ChecksumMismatchError{
			Expected: expected,
			Actual:   actual,
		}
	}
	return nil
}

// ChecksumMismatchError is returned when checksum verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch returns true if err is or wraps a checksum mismatch error.
func IsChecksumMismatch(err error) bool {
	var cm *ChecksumMismatchError
	return errors.As(err, &cm)
}
