package crcio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/hupe1980/crcgo"
	"github.com/hupe1980/crcgo/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shortWriter struct {
	buf bytes.Buffer
	max int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.max {
		w.buf.Write(p[:w.max])
		return w.max, io.ErrShortWrite
	}
	return w.buf.Write(p)
}

func TestWriter(t *testing.T) {
	c := crcgo.New(catalog.CRC32ISOHDLC)

	var buf bytes.Buffer
	cw := NewWriter(&buf, c)

	_, err := cw.Write([]byte("1234"))
	require.NoError(t, err)
	_, err = cw.Write([]byte("56789"))
	require.NoError(t, err)

	assert.Equal(t, "123456789", buf.String())
	assert.Equal(t, uint32(0xCBF43926), cw.Sum())

	cw.Reset()
	assert.Equal(t, uint32(0), cw.Sum())
}

func TestWriter_ShortWrite(t *testing.T) {
	c := crcgo.New(catalog.CRC32ISOHDLC)

	sw := &shortWriter{max: 4}
	cw := NewWriter(sw, c)

	n, err := cw.Write([]byte("123456789"))
	require.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, 4, n)
	assert.Equal(t, c.Checksum([]byte("1234")), cw.Sum())
}

func TestReader(t *testing.T) {
	c := crcgo.New(catalog.CRC32ISCSI)
	data := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog"), 100)

	cr := NewReader(bytes.NewReader(data), c)
	out, err := io.ReadAll(cr)
	require.NoError(t, err)

	assert.Equal(t, data, out)
	assert.Equal(t, c.Checksum(data), cr.Sum())
	assert.NoError(t, cr.Verify(c.Checksum(data)))

	err = cr.Verify(0xDEADBEEF)
	require.Error(t, err)
	assert.True(t, IsChecksumMismatch(err))

	cr.Reset()
	assert.Equal(t, c.Checksum(nil), cr.Sum())
}

func TestVerify(t *testing.T) {
	c := crcgo.New(catalog.CRC32ISOHDLC)

	assert.NoError(t, Verify(c, []byte("123456789"), 0xCBF43926))

	err := Verify(c, []byte("123456789"), 0x12345678)
	require.Error(t, err)

	var cm *ChecksumMismatchError
	require.True(t, errors.As(err, &cm))
	assert.Equal(t, uint32(0x12345678), cm.Expected)
	assert.Equal(t, uint32(0xCBF43926), cm.Actual)
	assert.Equal(t, "checksum mismatch: expected 0x12345678, got 0xcbf43926", err.Error())
}

func TestIsChecksumMismatch(t *testing.T) {
	assert.False(t, IsChecksumMismatch(nil))
	assert.False(t, IsChecksumMismatch(io.EOF))

	wrapped := fmt.Errorf("segment 3: %w", &ChecksumMismatchError{Expected: 1, Actual: 2})
	assert.True(t, IsChecksumMismatch(wrapped))
}
