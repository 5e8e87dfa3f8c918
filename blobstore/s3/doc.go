// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("images/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	b, err := store.Open(ctx, "disk.img")
//	sum, err := blobstore.Checksum(ctx, c, b)
//
// # Features
//
//   - Range reads streamed through the checksum engine
//   - Optional parallel whole-object download (WithParallelDownload)
//   - S3-side CRC-32 and CRC-32C values exposed via blobstore.StoredChecksum
//   - Configurable prefix, region and endpoint
package s3
