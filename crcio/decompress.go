package crcio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnknownFormat is returned for an unrecognized compression format name.
var ErrUnknownFormat = errors.New("unknown compression format")

// Format identifies a compression container.
type Format uint8

const (
	// FormatNone passes data through unchanged.
	FormatNone Format = iota
	// FormatAuto detects the format from the stream's magic bytes.
	FormatAuto
	// FormatGzip is RFC 1952 gzip.
	FormatGzip
	// FormatZstd is Zstandard frames.
	FormatZstd
	// FormatSnappy is the Snappy framing format.
	FormatSnappy
	// FormatS2 is the S2 stream format.
	FormatS2
	// FormatLZ4 is LZ4 frames.
	FormatLZ4
)

var formatNames = map[Format]string{
	FormatNone:   "none",
	FormatAuto:   "auto",
	FormatGzip:   "gzip",
	FormatZstd:   "zstd",
	FormatSnappy: "snappy",
	FormatS2:     "s2",
	FormatLZ4:    "lz4",
}

// String returns the string representation of a Format.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "unknown"
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatNone, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatNone, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

var (
	magicGzip   = []byte{0x1f, 0x8b}
	magicZstd   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4    = []byte{0x04, 0x22, 0x4d, 0x18}
	magicSnappy = []byte("\xff\x06\x00\x00sNaPpY")
	magicS2     = []byte("\xff\x06\x00\x00S2sTwO")
)

// Sniff inspects the next bytes of br without consuming them and returns
// the detected format, or FormatNone.
func Sniff(br *bufio.Reader) Format {
	head, _ := br.Peek(len(magicSnappy))

	switch {
	case bytes.HasPrefix(head, magicGzip):
		return FormatGzip
	case bytes.HasPrefix(head, magicZstd):
		return FormatZstd
	case bytes.HasPrefix(head, magicLZ4):
		return FormatLZ4
	case bytes.HasPrefix(head, magicSnappy):
		return FormatSnappy
	case bytes.HasPrefix(head, magicS2):
		return FormatS2
	default:
		return FormatNone
	}
}

// NewDecompressor wraps r with a reader that decodes format f.
// The caller must Close the result; closing does not close r.
func NewDecompressor(r io.Reader, f Format) (io.ReadCloser, error) {
	switch f {
	case FormatNone:
		return io.NopCloser(r), nil
	case FormatAuto:
		br := bufio.NewReader(r)
		return NewDecompressor(br, Sniff(br))
	case FormatGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case FormatZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case FormatSnappy, FormatS2:
		// The S2 reader also decodes Snappy framed streams.
		return io.NopCloser(s2.NewReader(r)), nil
	case FormatLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}
