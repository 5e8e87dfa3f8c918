package crcgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with crcgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithAlgorithm adds an algorithm field to the logger.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", name),
	}
}

// WithInput adds an input field to the logger.
func (l *Logger) WithInput(input string) *Logger {
	return &Logger{
		Logger: l.Logger.With("input", input),
	}
}

// LogTableBuilt logs the construction of an engine.
func (l *Logger) LogTableBuilt(name string, width uint8, kernel Kernel) {
	l.Debug("crc table built",
		"algorithm", name,
		"width", width,
		"kernel", kernel.String(),
	)
}

// LogSentinel logs a computation that was cut short by the byte validator.
func (l *Logger) LogSentinel(name string, offset int) {
	l.Warn("input byte rejected, returning sentinel",
		"algorithm", name,
		"offset", offset,
	)
}

// LogChecksum logs the checksum of a single input.
func (l *Logger) LogChecksum(ctx context.Context, input string, bytes int64, sum uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "checksum failed",
			"input", input,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "checksum computed",
			"input", input,
			"bytes", bytes,
			"checksum", sum,
		)
	}
}

// LogVerify logs a checksum verification.
func (l *Logger) LogVerify(ctx context.Context, input string, expected, actual uint32) {
	if expected != actual {
		l.WarnContext(ctx, "checksum mismatch",
			"input", input,
			"expected", expected,
			"actual", actual,
		)
	} else {
		l.InfoContext(ctx, "checksum verified",
			"input", input,
		)
	}
}
