package crcgo

// Digest is a streaming CRC computation.
//
// A Digest is owned by a single goroutine. It is consumed by Finalize;
// calling Update, Write or Finalize afterwards panics. Start a new Digest
// to compute another checksum.
type Digest struct {
	crc       *CRC
	value     uint32
	n         int64
	tripped   bool
	finalized bool
}

// Digest returns a streaming computation starting from the algorithm's Init.
func (c *CRC) Digest() *Digest {
	return c.DigestWithInitial(c.alg.Init)
}

// DigestWithInitial returns a streaming computation starting from initial
// instead of the algorithm's Init. Width and RefIn are applied to initial
// exactly as they are to Init.
func (c *CRC) DigestWithInitial(initial uint32) *Digest {
	return &Digest{
		crc:   c,
		value: c.init(initial),
	}
}

// Update appends p to the digested stream.
func (d *Digest) Update(p []byte) {
	d.mustBeLive()
	d.n += int64(len(p))
	if d.tripped {
		return
	}
	v, ok := d.crc.update(d.value, p)
	d.value, d.tripped = v, !ok
}

// Write implements io.Writer. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Len returns the number of bytes digested so far.
func (d *Digest) Len() int64 {
	return d.n
}

// Finalize consumes the digest and returns the checksum of everything
// passed to Update.
func (d *Digest) Finalize() uint32 {
	d.mustBeLive()
	d.finalized = true
	if d.crc.observe {
		d.crc.metrics.RecordDigest(d.n)
	}
	return d.crc.finalize(d.value)
}

func (d *Digest) mustBeLive() {
	if d.finalized {
		panic("crcgo: use of finalized Digest")
	}
}
