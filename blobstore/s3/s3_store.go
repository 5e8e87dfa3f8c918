package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/crcgo/blobstore"
)

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client     Client
	bucket     string
	prefix     string
	checksums  bool
	downloader *manager.Downloader
}

var _ blobstore.BlobStore = (*Store)(nil)

// NewStore creates a new S3 blob store from an existing client.
// rootPrefix is prepended to all keys (e.g. "images/").
func NewStore(client Client, bucket, rootPrefix string, optFns ...Option) *Store {
	o := applyOptions(optFns)
	o.prefix = rootPrefix
	return newStore(client, bucket, o)
}

func newStore(client Client, bucket string, o options) *Store {
	s := &Store{
		client:    client,
		bucket:    bucket,
		prefix:    o.prefix,
		checksums: o.verifyChecksum,
	}

	if o.partSize > 0 {
		s.downloader = manager.NewDownloader(client, func(d *manager.Downloader) {
			d.PartSize = o.partSize
			if o.concurrency > 0 {
				d.Concurrency = o.concurrency
			}
		})
	}

	return s
}

func (s *Store) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// Open fetches the object's metadata and returns a handle for range reads.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	input := &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if s.checksums {
		input.ChecksumMode = types.ChecksumModeEnabled
	}

	head, err := s.client.HeadObject(ctx, input)
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, blobstore.ErrNotFound
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	b := &s3Blob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		etag:   head.ETag,
		size:   aws.ToInt64(head.ContentLength),
	}

	if head.ChecksumType != types.ChecksumTypeComposite {
		b.stored = make(map[string]uint32, 2)
		if v, ok := decodeChecksum(head.ChecksumCRC32); ok {
			b.stored[blobstore.AlgorithmCRC32] = v
		}
		if v, ok := decodeChecksum(head.ChecksumCRC32C); ok {
			b.stored[blobstore.AlgorithmCRC32C] = v
		}
	}

	if s.downloader != nil {
		return &downloadBlob{s3Blob: b, downloader: s.downloader}, nil
	}
	return b, nil
}

func decodeChecksum(v *string) (uint32, bool) {
	if v == nil {
		return 0, false
	}
	return blobstore.ParseStoredChecksum(*v)
}

// s3Blob implements blobstore.Blob. Reads are pinned to the ETag seen by
// Open, so an object replaced in between fails with a precondition error
// instead of mixing versions.
type s3Blob struct {
	client Client
	bucket string
	key    string
	etag   *string
	size   int64
	stored map[string]uint32
}

func (b *s3Blob) Close() error {
	return nil
}

func (b *s3Blob) Size() int64 {
	return b.size
}

// ReadRange returns a reader for a range of bytes.
func (b *s3Blob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off < 0 {
		off = 0
	}
	if off >= b.size || length <= 0 {
		// S3 rejects ranges that start past the end, including on empty objects.
		return io.NopCloser(bytes.NewReader(nil)), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	end := off + length - 1
	if end >= b.size || end < off {
		end = b.size - 1
	}

	resp, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket:  aws.String(b.bucket),
		Key:     aws.String(b.key),
		Range:   aws.String(fmt.Sprintf("bytes=%d-%d", off, end)),
		IfMatch: b.etag,
	})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// StoredChecksum implements blobstore.StoredChecksum.
func (b *s3Blob) StoredChecksum(algorithm string) (uint32, bool) {
	v, ok := b.stored[algorithm]
	return v, ok
}

// downloadBlob fetches the whole object in parallel on first access. A
// failed or canceled download is retried by the next call.
type downloadBlob struct {
	*s3Blob
	downloader *manager.Downloader

	mu   sync.Mutex
	data []byte
	done bool
}

var _ blobstore.ContextMappable = (*downloadBlob)(nil)

func (b *downloadBlob) Bytes() ([]byte, error) {
	return b.BytesContext(context.Background())
}

func (b *downloadBlob) BytesContext(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.done {
		return b.data, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if b.size > 0 {
		buf := manager.NewWriteAtBuffer(make([]byte, 0, b.size))
		if _, err := b.downloader.Download(ctx, buf, &s3.GetObjectInput{
			Bucket:  aws.String(b.bucket),
			Key:     aws.String(b.key),
			IfMatch: b.etag,
		}); err != nil {
			return nil, err
		}
		b.data = buf.Bytes()
	}

	b.done = true
	return b.data, nil
}
