package excel2cfg

import (
	"context"
	"log/slog"
)

// Logger receives conversion diagnostics. Args are alternating key/value
// pairs, as with log/slog. Implementations must be safe for concurrent
// use: the formats of a sheet are emitted in parallel.
type Logger interface {
	Log(msg string, args ...any)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(msg string, args ...any)

// Log calls fn(msg, args...).
func (fn LoggerFunc) Log(msg string, args ...any) {
	fn(msg, args...)
}

// NopLogger discards everything.
type NopLogger struct{}

// Log does nothing.
func (NopLogger) Log(string, ...any) {}

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger returns a Logger writing to l. Messages carrying an
// "error" attribute are logged at error level, everything else at info.
func NewSlogLogger(l *slog.Logger) Logger {
	return slogLogger{l: l}
}

func (s slogLogger) Log(msg string, args ...any) {
	level := slog.LevelInfo
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok && k == "error" {
			level = slog.LevelError
			break
		}
	}
	s.l.Log(context.Background(), level, msg, args...)
}
