// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible servers (Ceph, SeaweedFS,
// Garage) without pulling in the AWS SDK.
//
// # Basic Usage
//
//	client, err := minio.Dial(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minio.NewStore(client, "my-bucket", "images/")
//	b, err := store.Open(ctx, "disk.img")
//	sum, err := blobstore.Checksum(ctx, c, b)
//
// Objects uploaded with CRC-32 or CRC-32C checksums expose them through
// blobstore.StoredChecksum.
package minio
