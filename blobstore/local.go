package blobstore

import (
	"bytes"
	"context"
	"io"
	"path/filepath"

	"github.com/hupe1980/crcgo/internal/mmap"
)

// ErrNotRegularFile is returned by LocalStore for paths that cannot be
// mapped, such as directories and named pipes.
var ErrNotRegularFile = mmap.ErrNotRegular

// LocalStore implements BlobStore using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
// An empty root resolves names relative to the working directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open maps the named file read-only.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	path := name
	if s.root != "" {
		path = filepath.Join(s.root, name)
	}

	m, err := mmap.Open(path, mmap.AccessSequential)
	if err != nil {
		return nil, err
	}
	return &localBlob{m: m}, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

func (b *localBlob) Size() int64 {
	return b.m.Size()
}

func (b *localBlob) ReadRange(_ context.Context, off, length int64) (io.ReadCloser, error) {
	data := b.m.Bytes()
	if data == nil && b.m.Size() > 0 {
		return nil, mmap.ErrClosed
	}
	start, end := clip(off, length, int64(len(data)))
	return io.NopCloser(bytes.NewReader(data[start:end])), nil
}

func (b *localBlob) Bytes() ([]byte, error) {
	data := b.m.Bytes()
	if data == nil && b.m.Size() > 0 {
		return nil, mmap.ErrClosed
	}
	return data, nil
}
