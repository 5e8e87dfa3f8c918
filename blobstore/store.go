package blobstore

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for reading immutable data blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
	// ReadRange returns a reader for length bytes starting at off. The range
	// is clipped to the end of the blob.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
}

// Mappable is an optional interface for Blobs whose contents are already
// addressable in memory.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// ContextMappable is implemented by Mappable blobs whose contents are
// fetched on first access. BytesContext aborts the fetch when ctx is done.
type ContextMappable interface {
	Mappable
	BytesContext(ctx context.Context) ([]byte, error)
}

// Algorithm names under which backends report stored checksums. They match
// the catalog names of the corresponding presets.
const (
	AlgorithmCRC32  = "CRC-32/ISO-HDLC"
	AlgorithmCRC32C = "CRC-32/ISCSI"
)

// StoredChecksum is an optional interface for Blobs whose backend keeps a
// checksum of the object, such as the CRC-32 and CRC-32C values S3
// computes on upload.
type StoredChecksum interface {
	// StoredChecksum returns the backend's checksum for the named
	// algorithm, or false if the backend does not have one.
	StoredChecksum(algorithm string) (uint32, bool)
}

// NewReader returns a reader over the whole blob.
func NewReader(ctx context.Context, b Blob) (io.ReadCloser, error) {
	return b.ReadRange(ctx, 0, b.Size())
}

// clip bounds [off, off+length) to [0, size).
func clip(off, length, size int64) (int64, int64) {
	if off < 0 {
		off = 0
	}
	if off > size {
		off = size
	}
	end := off + length
	if length < 0 || end > size || end < off {
		end = size
	}
	return off, end
}

// ParseStoredChecksum decodes the base64 big-endian encoding S3-compatible
// backends use for CRC-32 and CRC-32C object checksums. Composite
// multipart values ("...-N") are rejected since they do not cover the
// object as a whole.
func ParseStoredChecksum(v string) (uint32, bool) {
	raw, err := base64.StdEncoding.DecodeString(v)
	if err != nil || len(raw) != 4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(raw), true
}
