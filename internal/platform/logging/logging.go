// Package logging builds the slog loggers used by every todo entry point and
// carries request-scoped loggers through context.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "todo created", slog.String("todo_id", id))
//
// Error records carry the operation, the todo id when there is one, and the
// full chain under "error":
//
//	logger.ErrorContext(ctx, "saving todo list failed",
//	    slog.String("operation", "CreateTodo"),
//	    slog.Any("error", err),
//	)
//
// Every handler built by New passes attributes through the masq redactor
// (see redact.go) before they are encoded.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

const logFilePerm = 0o600

type contextKey struct{}

// New returns a logger writing format ("json" or "text"; anything else means
// json) to w at level. Levels parse the way slog does, case-insensitively,
// and fall back to info. Debug loggers also record the call site.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel converts "debug", "info", "warn" or "error" (any case, with
// optional slog offsets such as "warn+2") to a slog.Level. Unparseable input
// yields slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Output picks the log destination. An empty path means fallback; otherwise
// path is opened for appending and created when missing. The close func is
// never nil.
func Output(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, f.Close, nil
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
