package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	miniogo "github.com/minio/minio-go/v7"

	"github.com/hupe1980/crcgo/blobstore"
	"github.com/hupe1980/crcgo/blobstore/minio"
	"github.com/hupe1980/crcgo/blobstore/s3"
)

// storeFactory opens the store backing one bucket of a URL scheme.
type storeFactory func(ctx context.Context, bucket string) (blobstore.BlobStore, error)

// location is a parsed input.
type location struct {
	scheme string // "" for local paths
	bucket string
	key    string
}

func parseLocation(input string) (location, error) {
	if !strings.Contains(input, "://") {
		return location{key: input}, nil
	}

	u, err := url.Parse(input)
	if err != nil {
		return location{}, fmt.Errorf("invalid input %q: %w", input, err)
	}

	loc := location{
		scheme: strings.ToLower(u.Scheme),
		bucket: u.Host,
		key:    strings.TrimPrefix(u.Path, "/"),
	}
	if loc.bucket == "" || loc.key == "" {
		return location{}, fmt.Errorf("invalid input %q: want %s://bucket/key", input, loc.scheme)
	}
	return loc, nil
}

// stores resolves inputs to blob stores, creating remote stores lazily
// and once per bucket.
type stores struct {
	local     blobstore.BlobStore
	factories map[string]storeFactory

	mu     sync.Mutex
	opened map[string]blobstore.BlobStore
}

func newStores(cfg *Config, overrides map[string]storeFactory) *stores {
	s := &stores{
		local: blobstore.NewLocalStore(""),
		factories: map[string]storeFactory{
			"s3":    s3Factory(cfg.S3),
			"minio": minioFactory(cfg.MinIO),
		},
		opened: make(map[string]blobstore.BlobStore),
	}
	for scheme, f := range overrides {
		s.factories[scheme] = f
	}
	return s
}

func (s *stores) resolve(ctx context.Context, loc location) (blobstore.BlobStore, error) {
	if loc.scheme == "" {
		return s.local, nil
	}

	factory, ok := s.factories[loc.scheme]
	if !ok {
		return nil, fmt.Errorf("unsupported scheme %q", loc.scheme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := loc.scheme + "://" + loc.bucket
	if st, ok := s.opened[id]; ok {
		return st, nil
	}

	st, err := factory(ctx, loc.bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc.scheme, err)
	}
	s.opened[id] = st
	return st, nil
}

func s3Factory(cfg S3Config) storeFactory {
	return func(ctx context.Context, bucket string) (blobstore.BlobStore, error) {
		opts := []s3.Option{
			s3.WithRegion(cfg.Region),
			s3.WithEndpoint(cfg.Endpoint),
			s3.WithPathStyle(cfg.PathStyle),
		}
		if cfg.PartSize > 0 {
			opts = append(opts, s3.WithParallelDownload(cfg.PartSize, cfg.Concurrency))
		}
		return s3.New(ctx, bucket, opts...)
	}
}

func minioFactory(cfg MinIOConfig) storeFactory {
	var (
		once   sync.Once
		client *miniogo.Client
		err    error
	)
	return func(_ context.Context, bucket string) (blobstore.BlobStore, error) {
		once.Do(func() {
			client, err = minio.Dial(minio.Config{
				Endpoint:  cfg.Endpoint,
				AccessKey: cfg.AccessKey,
				SecretKey: cfg.SecretKey,
				Region:    cfg.Region,
				Secure:    cfg.Secure,
			})
		})
		if err != nil {
			return nil, err
		}
		return minio.NewStore(client, bucket, ""), nil
	}
}
