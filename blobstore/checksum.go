package blobstore

import (
	"context"

	"github.com/hupe1980/crcgo"
	"github.com/hupe1980/crcgo/crcio"
)

// Checksum computes the checksum of a whole blob. Mappable blobs are
// checksummed in place; others are streamed.
func Checksum(ctx context.Context, c *crcgo.CRC, b Blob) (uint32, error) {
	if data, ok, err := mapped(ctx, b); ok {
		if err != nil {
			return 0, err
		}
		return c.Checksum(data), nil
	}

	r, err := NewReader(ctx, b)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	sum, _, err := crcio.Sum(ctx, c, r)
	return sum, err
}

// mapped returns the in-memory contents of b, preferring the
// context-aware accessor. ok is false if b is not Mappable.
func mapped(ctx context.Context, b Blob) ([]byte, bool, error) {
	switch m := b.(type) {
	case ContextMappable:
		data, err := m.BytesContext(ctx)
		return data, true, err
	case Mappable:
		data, err := m.Bytes()
		return data, true, err
	default:
		return nil, false, nil
	}
}
