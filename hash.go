package crcgo

import "hash"

// Size is the size of a checksum in bytes as produced by Hash.Sum.
const Size = 4

var _ hash.Hash32 = (*Hash)(nil)

// Hash adapts a CRC to hash.Hash32.
//
// Unlike Digest, Sum and Sum32 do not consume the state, so a Hash can be
// read at any point and reused after Reset.
type Hash struct {
	crc     *CRC
	initial uint32
	value   uint32
	tripped bool
}

// NewHash returns a hash.Hash32 computing the engine's algorithm.
func (c *CRC) NewHash() *Hash {
	return c.NewHashWithInitial(c.alg.Init)
}

// NewHashWithInitial returns a hash.Hash32 that starts from (and resets to)
// initial instead of the algorithm's Init.
func (c *CRC) NewHashWithInitial(initial uint32) *Hash {
	h := &Hash{crc: c, initial: initial}
	h.Reset()
	return h
}

// Write implements io.Writer. It never fails.
func (h *Hash) Write(p []byte) (int, error) {
	if !h.tripped {
		var ok bool
		h.value, ok = h.crc.update(h.value, p)
		h.tripped = !ok
	}
	return len(p), nil
}

// Sum32 returns the checksum of the data written so far.
func (h *Hash) Sum32() uint32 {
	return h.crc.finalize(h.value)
}

// Sum appends the big-endian checksum to in.
func (h *Hash) Sum(in []byte) []byte {
	s := h.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Reset returns the hash to its initial state.
func (h *Hash) Reset() {
	h.value = h.crc.init(h.initial)
	h.tripped = false
}

// Size returns the number of bytes Sum appends.
func (h *Hash) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (h *Hash) BlockSize() int { return 1 }
