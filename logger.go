package quantity

import (
	"context"
	"fmt"
	"log/slog"
)

// Logger defines an interface for logging operations.
// Implementations should be safe for concurrent use.
type Logger interface {
	// Info logs informational messages
	Info(ctx context.Context, format string, args ...any)

	// Warn logs warning messages
	Warn(ctx context.Context, format string, args ...any)

	// Error logs error messages
	Error(ctx context.Context, format string, args ...any)

	// Debug logs debug messages
	Debug(ctx context.Context, format string, args ...any)
}

// noopLogger is a Logger that does nothing.
type noopLogger struct{}

func (noopLogger) Info(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, format string, args ...any) {}
func (noopLogger) Debug(ctx context.Context, format string, args ...any) {}

var defaultLogger Logger = noopLogger{}

// slogLogger adapts a *slog.Logger to Logger.
type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger returns a Logger writing through l. A nil l yields the
// no-op logger.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		return defaultLogger
	}
	return slogLogger{l: l}
}

func (s slogLogger) Info(ctx context.Context, format string, args ...any) {
	s.l.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (s slogLogger) Warn(ctx context.Context, format string, args ...any) {
	s.l.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (s slogLogger) Error(ctx context.Context, format string, args ...any) {
	s.l.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

func (s slogLogger) Debug(ctx context.Context, format string, args ...any) {
	s.l.DebugContext(ctx, fmt.Sprintf(format, args...))
}
