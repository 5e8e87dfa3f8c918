package crcio

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/hupe1980/crcgo"
)

const bufSize = 64 << 10

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, bufSize)
		return &b
	},
}

// Sum streams r through a Digest and returns the checksum and the number of
// bytes read. It stops early if ctx is canceled.
func Sum(ctx context.Context, c *crcgo.CRC, r io.Reader) (uint32, int64, error) {
	bp := bufPool.Get().(*[]byte)
	defer bufPool.Put(bp)
	buf := *bp

	d := c.Digest()
	for {
		if err := ctx.Err(); err != nil {
			return 0, d.Len(), err
		}

		n, err := r.Read(buf)
		if n > 0 {
			d.Update(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, d.Len(), err
		}
	}

	n := d.Len()
	return d.Finalize(), n, nil
}
