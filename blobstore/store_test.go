package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/crcgo"
	"github.com/hupe1980/crcgo/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// streamOnly hides Mappable so Checksum takes the streaming path.
type streamOnly struct {
	Blob
}

func readRange(t *testing.T, b Blob, off, length int64) string {
	t.Helper()
	r, err := b.ReadRange(context.Background(), off, length)
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestClip(t *testing.T) {
	tests := []struct {
		name              string
		off, length, size int64
		start, end        int64
	}{
		{"inside", 2, 3, 10, 2, 5},
		{"tail", 8, 5, 10, 8, 10},
		{"past end", 12, 5, 10, 10, 10},
		{"negative offset", -1, 3, 10, 0, 3},
		{"negative length", 4, -1, 10, 4, 10},
		{"overflow", 4, 1<<63 - 1, 10, 4, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := clip(tt.off, tt.length, tt.size)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "check.bin"), []byte("123456789"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.bin"), nil, 0o600))

	ctx := context.Background()
	store := NewLocalStore(dir)

	t.Run("ReadRange", func(t *testing.T) {
		b, err := store.Open(ctx, "check.bin")
		require.NoError(t, err)
		defer b.Close()

		assert.Equal(t, int64(9), b.Size())
		assert.Equal(t, "1234", readRange(t, b, 0, 4))
		assert.Equal(t, "6789", readRange(t, b, 5, 100))
		assert.Equal(t, "", readRange(t, b, 20, 1))
	})

	t.Run("Checksum", func(t *testing.T) {
		b, err := store.Open(ctx, "check.bin")
		require.NoError(t, err)
		defer b.Close()

		c := crcgo.New(catalog.CRC32ISOHDLC)

		sum, err := Checksum(ctx, c, b)
		require.NoError(t, err)
		assert.Equal(t, uint32(0xCBF43926), sum)

		sum, err = Checksum(ctx, c, streamOnly{b})
		require.NoError(t, err)
		assert.Equal(t, uint32(0xCBF43926), sum)
	})

	t.Run("Empty", func(t *testing.T) {
		b, err := store.Open(ctx, "empty.bin")
		require.NoError(t, err)
		defer b.Close()

		sum, err := Checksum(ctx, crcgo.New(catalog.CRC32ISOHDLC), b)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), sum)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.bin")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Closed", func(t *testing.T) {
		b, err := store.Open(ctx, "check.bin")
		require.NoError(t, err)
		require.NoError(t, b.Close())

		_, err = b.(Mappable).Bytes()
		assert.Error(t, err)
		_, err = b.ReadRange(ctx, 0, 1)
		assert.Error(t, err)
	})

	t.Run("Directory", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))
		_, err := store.Open(ctx, "sub")
		assert.ErrorIs(t, err, ErrNotRegularFile)
	})

	t.Run("EmptyRoot", func(t *testing.T) {
		b, err := NewLocalStore("").Open(ctx, filepath.Join(dir, "check.bin"))
		require.NoError(t, err)
		defer b.Close()
		assert.Equal(t, int64(9), b.Size())
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("The quick brown fox jumps over the lazy dog")
	require.NoError(t, store.Put(ctx, "a/fox", data))
	require.NoError(t, store.Put(ctx, "a/check", []byte("123456789")))
	require.NoError(t, store.Put(ctx, "b/other", nil))

	// Put copies its input.
	data[0] = 'X'

	b, err := store.Open(ctx, "a/fox")
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, int64(43), b.Size())
	assert.Equal(t, "quick", readRange(t, b, 4, 5))

	sum, err := Checksum(ctx, crcgo.New(catalog.CRC32ISOHDLC), b)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x414FA339), sum)

	names, err := store.List(ctx, "a/")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/check", "a/fox"}, names)

	require.NoError(t, store.Delete(ctx, "a/fox"))
	_, err = store.Open(ctx, "a/fox")
	assert.ErrorIs(t, err, ErrNotFound)

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/check", "b/other"}, names)
}

func TestNewReader(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "x", []byte("123456789")))

	b, err := store.Open(ctx, "x")
	require.NoError(t, err)

	r, err := NewReader(ctx, b)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "123456789", string(data))
}

func TestParseStoredChecksum(t *testing.T) {
	v, ok := ParseStoredChecksum("y/Q5Jg==")
	require.True(t, ok)
	assert.Equal(t, uint32(0xCBF43926), v)

	_, ok = ParseStoredChecksum("y/Q5Jg==-3")
	assert.False(t, ok)

	_, ok = ParseStoredChecksum("")
	assert.False(t, ok)
}
