// Command crcsum prints or verifies CRC checksums of files, standard input
// and objects in S3 or MinIO.
//
// Usage:
//
//	crcsum [flags] [input ...]
//
// Inputs are local paths, "-" for standard input, s3://bucket/key or
// minio://bucket/key. With no inputs, standard input is read.
//
// Examples:
//
//	crcsum image.bin
//	crcsum -a CRC-32C s3://backups/db.tar.zst
//	crcsum -d auto --check 0xcbf43926 archive.gz
//	crcsum --width 16 --poly 0x1021 --init 0xffff -
//	crcsum --list
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := execute(ctx, invocation{
		args:   os.Args[1:],
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	})

	stop()
	os.Exit(code)
}
