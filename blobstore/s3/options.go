package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Option configures a Store created by New.
type Option func(*options)

type options struct {
	prefix         string
	region         string
	endpoint       string
	pathStyle      bool
	partSize       int64
	concurrency    int
	verifyChecksum bool
}

// WithPrefix sets a key prefix prepended to every blob name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRegion overrides the region from the shared AWS configuration.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithEndpoint points the client at a custom endpoint such as LocalStack.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithPathStyle forces path-style addressing.
func WithPathStyle(enabled bool) Option {
	return func(o *options) {
		o.pathStyle = enabled
	}
}

// WithParallelDownload makes opened blobs Mappable: Bytes fetches the
// whole object with concurrent ranged GETs of partSize bytes. Use it for
// objects that fit in memory.
func WithParallelDownload(partSize int64, concurrency int) Option {
	return func(o *options) {
		o.partSize = partSize
		o.concurrency = concurrency
	}
}

// WithStoredChecksums requests the CRC-32 and CRC-32C values S3 keeps for
// objects uploaded with additional checksums.
func WithStoredChecksums(enabled bool) Option {
	return func(o *options) {
		o.verifyChecksum = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		verifyChecksum: true,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// New creates a Store for bucket using the default AWS credential chain.
func New(ctx context.Context, bucket string, optFns ...Option) (*Store, error) {
	o := applyOptions(optFns)

	var loadOpts []func(*config.LoadOptions) error
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(so *s3.Options) {
		if o.endpoint != "" {
			so.BaseEndpoint = aws.String(o.endpoint)
		}
		so.UsePathStyle = o.pathStyle
	})

	return newStore(client, bucket, o), nil
}
