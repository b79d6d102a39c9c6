package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/middleware"
)

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"todos":[],"count":0}`))
	}))
	rec := serve(h, http.MethodGet, "/api/v1/todos", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"todos":[],"count":0}`, rec.Body.String())
}

func TestRecovery_PanicBecomesProblemResponse(t *testing.T) {
	t.Parallel()

	for name, value := range map[string]any{"string": "boom", "int": 42, "error": assert.AnError} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(value)
			}))
			rec := serve(h, http.MethodPost, "/api/v1/todos", nil)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Internal Server Error", body["title"])
			assert.Equal(t, "internal server error", body["detail"], "panic value must not leak to clients")
		})
	}
}

func TestRecovery_LogsPanicAndStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.RequestID()(middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("repository exploded")
	})))
	serve(h, http.MethodGet, "/api/v1/todos", map[string]string{middleware.HeaderRequestID: "req-panic"})

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "repository exploded")
	assert.Contains(t, out, "goroutine")
	assert.Contains(t, out, "req-panic")
}

func TestRecovery_KeepsStatusAlreadySent(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("partial"))
		panic("late")
	}))
	rec := serve(h, http.MethodPost, "/api/v1/todos", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(h, http.MethodGet, "/", nil)
	})
}
