package minio

import (
	"bytes"
	"context"
	"io"
	"path"

	"github.com/hupe1980/crcgo/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds the connection settings for Dial.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Secure    bool
}

// Dial creates a MinIO client with static credentials.
func Dial(cfg Config) (*minio.Client, error) {
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
}

// Store implements blobstore.BlobStore for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

var _ blobstore.BlobStore = (*Store)(nil)

// NewStore creates a new MinIO blob store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "images/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func isNotFound(err error) bool {
	errResp := minio.ToErrorResponse(err)
	return errResp.Code == "NoSuchKey" || errResp.Code == "NotFound"
}

// Open opens an existing blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	opts := minio.StatObjectOptions{}
	opts.Checksum = true

	info, err := s.client.StatObject(ctx, s.bucket, key, opts)
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	b := &minioBlob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		etag:   info.ETag,
		size:   info.Size,
		stored: make(map[string]uint32, 2),
	}
	if v, ok := blobstore.ParseStoredChecksum(info.ChecksumCRC32); ok {
		b.stored[blobstore.AlgorithmCRC32] = v
	}
	if v, ok := blobstore.ParseStoredChecksum(info.ChecksumCRC32C); ok {
		b.stored[blobstore.AlgorithmCRC32C] = v
	}

	return b, nil
}

// minioBlob implements blobstore.Blob for MinIO. Reads are pinned to the
// ETag seen by Open.
type minioBlob struct {
	client *minio.Client
	bucket string
	key    string
	etag   string
	size   int64
	stored map[string]uint32
}

func (b *minioBlob) Size() int64 {
	return b.size
}

func (b *minioBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off < 0 {
		off = 0
	}
	if off >= b.size || length <= 0 {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}

	end := off + length - 1
	if end >= b.size || end < off {
		end = b.size - 1
	}

	opts, err := b.getOptions(off, end)
	if err != nil {
		return nil, err
	}

	obj, err := b.client.GetObject(ctx, b.bucket, b.key, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (b *minioBlob) getOptions(off, end int64) (minio.GetObjectOptions, error) {
	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, end); err != nil {
		return opts, err
	}
	if b.etag != "" {
		if err := opts.SetMatchETag(b.etag); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// StoredChecksum implements blobstore.StoredChecksum.
func (b *minioBlob) StoredChecksum(algorithm string) (uint32, bool) {
	v, ok := b.stored[algorithm]
	return v, ok
}

func (b *minioBlob) Close() error {
	return nil
}
