package oxymap

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with oxymap-specific helpers.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(loaded, skipped int, err error) {
	if err != nil {
		l.Error("load failed",
			"error", err,
		)
	} else {
		l.Info("load completed",
			"loaded", loaded,
			"skipped", skipped,
		)
	}
}

// LogFilter logs a filter operation.
func (l *Logger) LogFilter(matched int) {
	l.Debug("filter completed",
		"matched", matched,
	)
}

// LogExport logs an export operation.
func (l *Logger) LogExport(format string, size int, err error) {
	if err != nil {
		l.Error("export failed",
			"format", format,
			"error", err,
		)
	} else {
		l.Debug("export completed",
			"format", format,
			"bytes", size,
		)
	}
}
