// Package blobstore provides read-only access to immutable blobs whose
// contents are checksummed.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-memory, for tests and staging
//   - s3.Store: Amazon S3 with range reads
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Checksumming
//
//	store := blobstore.NewLocalStore("/var/lib/images")
//	b, err := store.Open(ctx, "disk.img")
//	if err != nil { ... }
//	defer b.Close()
//
//	sum, err := blobstore.Checksum(ctx, crcgo.New(catalog.CRC32ISCSI), b)
//
// Blobs that implement Mappable are checksummed without copying. Remote
// blobs may implement StoredChecksum to expose the checksum their backend
// already holds.
package blobstore
