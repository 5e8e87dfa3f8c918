package crcio

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// NewLimiter returns a limiter allowing bytesPerSec bytes per second with a
// one-second burst, or nil if bytesPerSec <= 0.
func NewLimiter(bytesPerSec int) *rate.Limiter {
	if bytesPerSec <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
}

type rateLimitedReader struct {
	ctx context.Context
	r   io.Reader
	lim *rate.Limiter
}

// NewRateLimitedReader throttles reads from r through lim. A limiter may be
// shared by several readers to cap their combined throughput. If lim is nil,
// r is returned unchanged.
func NewRateLimitedReader(ctx context.Context, r io.Reader, lim *rate.Limiter) io.Reader {
	if lim == nil {
		return r
	}
	return &rateLimitedReader{ctx: ctx, r: r, lim: lim}
}

func (l *rateLimitedReader) Read(p []byte) (int, error) {
	if burst := l.lim.Burst(); len(p) > burst {
		p = p[:burst]
	}

	n, err := l.r.Read(p)
	if n > 0 {
		if werr := l.lim.WaitN(l.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
