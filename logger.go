package mvector

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vector-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogGrow logs a reallocation to a larger buffer.
func (l *Logger) LogGrow(ctx context.Context, oldCap, newCap, length int) {
	l.DebugContext(ctx, "buffer grown",
		"old_capacity", oldCap,
		"new_capacity", newCap,
		"length", length,
	)
}

// LogShrink logs a reallocation to a smaller buffer.
func (l *Logger) LogShrink(ctx context.Context, oldCap, newCap int) {
	l.DebugContext(ctx, "buffer shrunk",
		"old_capacity", oldCap,
		"new_capacity", newCap,
	)
}

// LogAllocFailure logs a buffer allocation that could not be satisfied.
func (l *Logger) LogAllocFailure(ctx context.Context, elements int, bytes int64, err error) {
	l.WarnContext(ctx, "allocation failed",
		"elements", elements,
		"bytes", bytes,
		"error", err,
	)
}
