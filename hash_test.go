package crcgo

import (
	"hash"
	"hash/crc32"
	"io"
	"strings"
	"testing"

	"github.com/hupe1980/crcgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashMatchesStdlib tests that Hash behaves exactly like the standard
// library's CRC-32 hash through a sequence of writes, sums and resets.
func TestHashMatchesStdlib(t *testing.T) {
	var stdHash hash.Hash32 = crc32.NewIEEE()
	var crcHash hash.Hash32 = New(crc32ISOHDLC()).NewHash()

	assert.Equal(t, stdHash.Size(), crcHash.Size())
	assert.Equal(t, stdHash.BlockSize(), crcHash.BlockSize())
	assert.Equal(t, stdHash.Sum32(), crcHash.Sum32())

	for _, s := range []string{"test", "hello", "", "world"} {
		_, err := io.WriteString(stdHash, s)
		require.NoError(t, err)
		_, err = io.WriteString(crcHash, s)
		require.NoError(t, err)

		assert.Equal(t, stdHash.Sum32(), crcHash.Sum32())
		assert.Equal(t, stdHash.Sum([]byte("prefix")), crcHash.Sum([]byte("prefix")))
	}

	stdHash.Reset()
	crcHash.Reset()
	assert.Equal(t, stdHash.Sum32(), crcHash.Sum32())
}

func TestHashSumDoesNotConsume(t *testing.T) {
	h := New(crc32ISOHDLC()).NewHash()

	_, _ = io.Copy(h, strings.NewReader("1234"))
	_ = h.Sum32()
	_, _ = io.Copy(h, strings.NewReader("56789"))

	assert.Equal(t, uint32(0xCBF43926), h.Sum32())
	assert.Equal(t, []byte{0xCB, 0xF4, 0x39, 0x26}, h.Sum(nil))
}

func TestHashWithInitial(t *testing.T) {
	alg := &Algorithm{Name: "CRC-16/ARC", Width: 16, Poly: 0x8005, RefIn: true, RefOut: true}
	c := New(alg)
	data := testutil.NewRNG(2).Bytes(100)

	h := c.NewHashWithInitial(0xBEEF)
	_, _ = h.Write(data)

	d := c.DigestWithInitial(0xBEEF)
	d.Update(data)
	assert.Equal(t, d.Finalize(), h.Sum32())

	h.Reset()
	_, _ = h.Write(data)
	assert.Equal(t, testutil.Bitwise(testutil.Params{Width: 16, Poly: 0x8005, Init: 0xBEEF, RefIn: true, RefOut: true}, data), h.Sum32())
}

func TestHashSentinel(t *testing.T) {
	c := New(crc32ISOHDLC(), WithByteValidator(rejectByte(0x00)))
	h := c.NewHash()

	_, _ = h.Write([]byte{1, 0, 2})
	_, _ = h.Write([]byte("more"))
	assert.Equal(t, c.finalize(SentinelRegister), h.Sum32())

	h.Reset()
	_, _ = h.Write([]byte("123456789"))
	assert.Equal(t, uint32(0xCBF43926), h.Sum32())
}
