package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-core/internal/platform/logging"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "log output: %s", buf.String())
	return rec
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{logging.FormatJSON, []string{`"level":"INFO"`, `"msg":"todo created"`, `"todo_id":"id-1"`}},
		{logging.FormatText, []string{"level=INFO", `msg="todo created"`, "todo_id=id-1"}},
		{"yaml", []string{`"level":"INFO"`, `"msg":"todo created"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("todo created", slog.String("todo_id", "id-1"))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		emitted  []slog.Level
		filtered []slog.Level
	}{
		{"debug", []slog.Level{slog.LevelDebug, slog.LevelInfo}, nil},
		{"DEBUG", []slog.Level{slog.LevelDebug}, nil},
		{"info", []slog.Level{slog.LevelInfo, slog.LevelWarn}, []slog.Level{slog.LevelDebug}},
		{"Warn", []slog.Level{slog.LevelWarn}, []slog.Level{slog.LevelInfo}},
		{"error", []slog.Level{slog.LevelError}, []slog.Level{slog.LevelWarn}},
		{"verbose", []slog.Level{slog.LevelInfo}, []slog.Level{slog.LevelDebug}},
		{"", []slog.Level{slog.LevelInfo}, []slog.Level{slog.LevelDebug}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			logger := logging.New(tt.level, "json", io.Discard)
			for _, lvl := range tt.emitted {
				assert.True(t, logger.Enabled(context.Background(), lvl), "%s should be enabled", lvl)
			}
			for _, lvl := range tt.filtered {
				assert.False(t, logger.Enabled(context.Background(), lvl), "%s should be filtered", lvl)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn+2, logging.ParseLevel("warn+2"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("loud"))
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("x")
	logging.New("info", "json", &infoBuf).Info("x")

	assert.Contains(t, decodeRecord(t, &debugBuf), slog.SourceKey)
	assert.NotContains(t, decodeRecord(t, &infoBuf), slog.SourceKey)
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization header", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"cookie header", slog.String("cookie", "session=abc123"), "abc123"},
		{"password field", slog.String("password", "hunter2"), "hunter2"},
		{"dsn field", slog.String("dsn", "postgres://todo:s3cr3t@db:5432/todos"), "s3cr3t"},
		{"secret prefix", slog.String("secret_key", "k-123"), "k-123"},
		{"api key prefix", slog.String("api_key_v2", "ak-999"), "ak-999"},
		{"bearer in value", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"inline api key", slog.String("note", "retry with api_key=zzz-top"), "zzz-top"},
		{"dsn inside error text", slog.String("error", "dial postgres://todo:hunter22@db:5432/todos: refused"), "hunter22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			assert.NotContains(t, buf.String(), tt.secret)
			assert.Contains(t, buf.String(), "[REDACTED]")
		})
	}
}

func TestNew_LeavesOrdinaryFieldsAlone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("todo created",
		slog.String("todo_id", "0b5e0c7e-6a4f-4a53-9d55-0f1c2f0d2d11"),
		slog.String("title", "Buy milk"),
		slog.String("path", "/api/v1/todos"),
	)

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "0b5e0c7e-6a4f-4a53-9d55-0f1c2f0d2d11", rec["todo_id"])
	assert.Equal(t, "Buy milk", rec["title"])
	assert.Equal(t, "/api/v1/todos", rec["path"])
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	first := slog.New(slog.DiscardHandler)
	second := slog.New(slog.DiscardHandler)

	ctx := logging.WithLogger(context.Background(), first)
	assert.Same(t, first, logging.FromContext(ctx))

	ctx = logging.WithLogger(ctx, second)
	assert.Same(t, second, logging.FromContext(ctx))
}

func TestOutput(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses fallback", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w, closeFn, err := logging.Output("", &buf)
		require.NoError(t, err)
		assert.Same(t, &buf, w)
		assert.NoError(t, closeFn())
	})

	t.Run("file is appended across opens", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "todo.log")
		for _, msg := range []string{"first", "second"} {
			w, closeFn, err := logging.Output(path, io.Discard)
			require.NoError(t, err)
			logging.New("info", "text", w).Info(msg)
			require.NoError(t, closeFn())
		}

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), "msg=first")
		assert.Contains(t, string(b), "msg=second")
	})

	t.Run("missing parent directory", func(t *testing.T) {
		t.Parallel()
		_, _, err := logging.Output(filepath.Join(t.TempDir(), "missing", "todo.log"), io.Discard)
		assert.ErrorContains(t, err, "opening log file")
	})
}
