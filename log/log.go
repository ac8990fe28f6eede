// Package log provides the leveled, structured logging used throughout the
// pool. It is a thin wrapper around log/slog, matching the call shape
// (level method, then a message, then alternating key/value pairs) used
// across the pack this module was grounded on.
package log

import (
	"context"
	"log/slog"
	"os"
)

// Logger is a structured, leveled logger bound to a fixed set of
// attributes. New loggers are derived with New, and the package-level
// functions operate on a default root logger.
type Logger struct {
	inner *slog.Logger
}

var root = &Logger{inner: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))}

// SetDefault replaces the package-level root logger.
func SetDefault(l *Logger) {
	if l != nil {
		root = l
	}
}

// New derives a Logger scoped with the given alternating key/value pairs.
func New(ctx ...any) *Logger {
	return &Logger{inner: root.inner.With(ctx...)}
}

func (l *Logger) slog() *slog.Logger {
	if l == nil {
		return root.inner
	}
	return l.inner
}

// Trace logs at trace (slog's lowest level minus four) granularity.
func (l *Logger) Trace(msg string, ctx ...any) { l.slog().Log(context.Background(), levelTrace, msg, ctx...) }

// Debug logs at debug granularity.
func (l *Logger) Debug(msg string, ctx ...any) { l.slog().Debug(msg, ctx...) }

// Info logs at info granularity.
func (l *Logger) Info(msg string, ctx ...any) { l.slog().Info(msg, ctx...) }

// Warn logs at warn granularity.
func (l *Logger) Warn(msg string, ctx ...any) { l.slog().Warn(msg, ctx...) }

// Error logs at error granularity.
func (l *Logger) Error(msg string, ctx ...any) { l.slog().Error(msg, ctx...) }

const levelTrace = slog.Level(-8)

// Package-level convenience functions operate on the root logger.

func Trace(msg string, ctx ...any) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...any) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { root.Error(msg, ctx...) }
