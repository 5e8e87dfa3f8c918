package prommetrics

import (
	"time"

	"github.com/hupe1980/crcgo"
	"github.com/prometheus/client_golang/prometheus"
)

const labelAlgorithm = "algorithm"

// Config configures a Collector.
type Config struct {
	// Namespace prefixes every metric name. Default: "crcgo".
	Namespace string

	// ConstLabels are attached to every metric.
	ConstLabels prometheus.Labels

	// DurationBuckets are the histogram buckets for checksum and table
	// build latency, in seconds. Default: prometheus.ExponentialBuckets(1e-6, 4, 10).
	DurationBuckets []float64
}

// Collector exports engine metrics to Prometheus. It implements
// prometheus.Collector and is registered like any other collector:
//
//	col := prommetrics.New(prommetrics.Config{})
//	prometheus.MustRegister(col)
//
//	c := crcgo.New(alg, crcgo.WithMetricsCollector(col.ForAlgorithm(alg.Name)))
type Collector struct {
	tableBuilds      *prometheus.HistogramVec
	checksums        *prometheus.CounterVec
	checksumBytes    *prometheus.CounterVec
	checksumDuration *prometheus.HistogramVec
	digests          *prometheus.CounterVec
	digestBytes      *prometheus.CounterVec
	sentinels        *prometheus.CounterVec
}

var _ prometheus.Collector = (*Collector)(nil)

// New creates a Collector.
func New(cfg Config) *Collector {
	if cfg.Namespace == "" {
		cfg.Namespace = "crcgo"
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = prometheus.ExponentialBuckets(1e-6, 4, 10)
	}

	labels := []string{labelAlgorithm}

	return &Collector{
		tableBuilds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "table_build_duration_seconds",
			Help:        "Time spent building lookup tables",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.DurationBuckets,
		}, labels),
		checksums: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "checksums_total",
			Help:        "Total one-shot checksums computed",
			ConstLabels: cfg.ConstLabels,
		}, labels),
		checksumBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "checksum_bytes_total",
			Help:        "Total bytes processed by one-shot checksums",
			ConstLabels: cfg.ConstLabels,
		}, labels),
		checksumDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "checksum_duration_seconds",
			Help:        "Latency of one-shot checksums",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.DurationBuckets,
		}, labels),
		digests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "digests_finalized_total",
			Help:        "Total streaming digests finalized",
			ConstLabels: cfg.ConstLabels,
		}, labels),
		digestBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "digest_bytes_total",
			Help:        "Total bytes consumed by finalized digests",
			ConstLabels: cfg.ConstLabels,
		}, labels),
		sentinels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "sentinel_total",
			Help:        "Total computations short-circuited by a rejected input byte",
			ConstLabels: cfg.ConstLabels,
		}, labels),
	}
}

func (c *Collector) all() []prometheus.Collector {
	return []prometheus.Collector{
		c.tableBuilds,
		c.checksums,
		c.checksumBytes,
		c.checksumDuration,
		c.digests,
		c.digestBytes,
		c.sentinels,
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.all() {
		m.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.all() {
		m.Collect(ch)
	}
}

// ForAlgorithm returns a crcgo.MetricsCollector that records under the
// given algorithm label.
func (c *Collector) ForAlgorithm(name string) crcgo.MetricsCollector {
	return &algorithmCollector{
		tableBuilds:      c.tableBuilds.WithLabelValues(name),
		checksums:        c.checksums.WithLabelValues(name),
		checksumBytes:    c.checksumBytes.WithLabelValues(name),
		checksumDuration: c.checksumDuration.WithLabelValues(name),
		digests:          c.digests.WithLabelValues(name),
		digestBytes:      c.digestBytes.WithLabelValues(name),
		sentinels:        c.sentinels.WithLabelValues(name),
	}
}

type algorithmCollector struct {
	tableBuilds      prometheus.Observer
	checksums        prometheus.Counter
	checksumBytes    prometheus.Counter
	checksumDuration prometheus.Observer
	digests          prometheus.Counter
	digestBytes      prometheus.Counter
	sentinels        prometheus.Counter
}

func (a *algorithmCollector) RecordTableBuild(d time.Duration) {
	a.tableBuilds.Observe(d.Seconds())
}

func (a *algorithmCollector) RecordChecksum(bytes int64, d time.Duration) {
	a.checksums.Inc()
	a.checksumBytes.Add(float64(bytes))
	a.checksumDuration.Observe(d.Seconds())
}

func (a *algorithmCollector) RecordDigest(bytes int64) {
	a.digests.Inc()
	a.digestBytes.Add(float64(bytes))
}

func (a *algorithmCollector) RecordSentinel() {
	a.sentinels.Inc()
}
