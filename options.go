package crcgo

import (
	"log/slog"

	"github.com/hupe1980/crcgo/internal/accel"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	validator        ByteValidator
	kernel           Kernel
}

// Option configures New.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &crcgo.BasicMetricsCollector{}
//	c := crcgo.New(&alg, crcgo.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Checksums: %d, Bytes: %d\n", stats.ChecksumCount, stats.ChecksumBytes)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := crcgo.NewJSONLogger(slog.LevelDebug)
//	c := crcgo.New(&alg, crcgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithByteValidator overrides the build's default byte validation strategy.
// Any validator other than NoopValidator disables the hardware kernel.
func WithByteValidator(v ByteValidator) Option {
	return func(o *options) {
		if v == nil {
			v = NoopValidator{}
		}
		o.validator = v
	}
}

// WithKernel requests an update kernel. KernelHardware silently falls back
// to KernelGeneric when the algorithm or CPU has no hardware support.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		validator:        defaultByteValidator(),
		kernel:           accel.Preferred(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
