// Package crcio provides streaming helpers around the crcgo engine.
//
// # Checksumming Readers and Writers
//
//	cw := crcio.NewWriter(file, c)
//	io.Copy(cw, src)
//	sum := cw.Sum()
//
//	cr := crcio.NewReader(file, c)
//	io.Copy(dst, cr)
//	if err := cr.Verify(expected); crcio.IsChecksumMismatch(err) { ... }
//
// # Stored Content
//
// Sum consumes a reader through a Digest. NewDecompressor lets the checksum
// be taken over the decoded payload of gzip, zstd, snappy, s2 or lz4 data,
// and NewRateLimitedReader caps read throughput:
//
//	lim := crcio.NewLimiter(10 << 20) // 10 MiB/s
//	rc, _ := crcio.NewDecompressor(crcio.NewRateLimitedReader(ctx, f, lim), crcio.FormatAuto)
//	defer rc.Close()
//	sum, n, err := crcio.Sum(ctx, c, rc)
//
// Note: CRC is NOT cryptographically secure. Use it to detect accidental
// corruption, not tampering.
package crcio
