package crcgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus; see package prommetrics for a ready-made implementation.
//
// Collectors are called from the goroutine performing the computation and
// must be safe for concurrent use.
type MetricsCollector interface {
	// RecordTableBuild is called once per New with the construction time.
	RecordTableBuild(duration time.Duration)

	// RecordChecksum is called after each one-shot Checksum.
	RecordChecksum(bytes int64, duration time.Duration)

	// RecordDigest is called when a Digest is finalized with the total
	// number of bytes it consumed.
	RecordDigest(bytes int64)

	// RecordSentinel is called when a ByteValidator rejects an input byte.
	RecordSentinel()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// The engine skips timing entirely when it is configured.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTableBuild(time.Duration)      {}
func (NoopMetricsCollector) RecordChecksum(int64, time.Duration) {}
func (NoopMetricsCollector) RecordDigest(int64)                  {}
func (NoopMetricsCollector) RecordSentinel()                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TableBuilds        atomic.Int64
	TableBuildNanos    atomic.Int64
	ChecksumCount      atomic.Int64
	ChecksumBytes      atomic.Int64
	ChecksumTotalNanos atomic.Int64
	DigestCount        atomic.Int64
	DigestBytes        atomic.Int64
	SentinelCount      atomic.Int64
}

// RecordTableBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTableBuild(duration time.Duration) {
	b.TableBuilds.Add(1)
	b.TableBuildNanos.Add(duration.Nanoseconds())
}

// RecordChecksum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChecksum(bytes int64, duration time.Duration) {
	b.ChecksumCount.Add(1)
	b.ChecksumBytes.Add(bytes)
	b.ChecksumTotalNanos.Add(duration.Nanoseconds())
}

// RecordDigest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDigest(bytes int64) {
	b.DigestCount.Add(1)
	b.DigestBytes.Add(bytes)
}

// RecordSentinel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSentinel() {
	b.SentinelCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TableBuilds:      b.TableBuilds.Load(),
		ChecksumCount:    b.ChecksumCount.Load(),
		ChecksumBytes:    b.ChecksumBytes.Load(),
		ChecksumAvgNanos: b.getAvgChecksumNanos(),
		DigestCount:      b.DigestCount.Load(),
		DigestBytes:      b.DigestBytes.Load(),
		SentinelCount:    b.SentinelCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgChecksumNanos() int64 {
	count := b.ChecksumCount.Load()
	if count == 0 {
		return 0
	}
	return b.ChecksumTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TableBuilds      int64
	ChecksumCount    int64
	ChecksumBytes    int64
	ChecksumAvgNanos int64
	DigestCount      int64
	DigestBytes      int64
	SentinelCount    int64
}
