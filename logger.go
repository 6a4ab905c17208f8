package arenakit

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with arenakit-specific context.
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

// logRecycle traces an implicit whole-arena recycle. The event invalidates
// every pointer previously issued from the arena, which is worth a trace
// when debugging dangling-pointer symptoms.
func (l *Logger) logRecycle(used, requested int) {
	l.Debug("arena recycled",
		"used", used,
		"requested", requested,
	)
}

// logClear traces an explicit clear.
func (l *Logger) logClear(hard bool) {
	l.Debug("arena cleared",
		"hard", hard,
	)
}
