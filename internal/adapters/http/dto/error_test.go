package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-core/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("fetching todo: %w", domain.ErrNotFound), http.StatusNotFound},
		{"validation", &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}, http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"not implemented", &domain.NotImplementedError{Operation: "GetAll"}, http.StatusNotImplemented},
		{"unavailable", fmt.Errorf("kv get todos: %w", domain.ErrUnavailable), http.StatusServiceUnavailable},
		{"deadline exceeded", fmt.Errorf("kv get todos: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"storage corruption", &domain.StorageCorruptionError{Key: "todos", Err: errors.New("bad json")}, http.StatusInternalServerError},
		{"unknown", errors.New("oops"), http.StatusInternalServerError},
		{"invalid stored record", fmt.Errorf("listing todos: %w", &domain.StoredRecordError{
			Index: 0,
			Err:   &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}},
		}), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/todos?limit=5", nil)

			got := dto.NewErrorResponse(r, tt.err)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, http.StatusText(tt.wantStatus), got.Title)
			assert.Equal(t, "about:blank", got.Type)
			assert.Equal(t, "/api/v1/todos?limit=5", got.Instance)
			assert.Equal(t, tt.err.Error(), got.Detail)
		})
	}
}

func TestNewErrorResponse_ValidationDetailsSortedByLocation(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"title": domain.MsgRequired,
		"id":    domain.MsgRequired,
		"body":  "invalid JSON",
	}}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/todos", nil)

	got := dto.NewErrorResponse(r, verr)

	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body.body", Message: "invalid JSON"},
		{Location: "body.id", Message: domain.MsgRequired},
		{Location: "body.title", Message: domain.MsgRequired},
	}, got.Errors)
}

func TestNewErrorResponse_NoDetailsForOtherErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/todos", nil)
	assert.Nil(t, dto.NewErrorResponse(r, domain.ErrUnavailable).Errors)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/todos", nil)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"type": "about:blank",
		"title": "Bad Request",
		"status": 400,
		"detail": "validation error: title: is required",
		"instance": "/api/v1/todos",
		"errors": [{"location": "body.title", "message": "is required"}]
	}`, w.Body.String())
}

func TestWriteProblem(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/todos", nil)

	dto.WriteProblem(w, r, http.StatusMethodNotAllowed, "method DELETE not allowed")

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, dto.ErrorResponse{
		Type:     "about:blank",
		Title:    "Method Not Allowed",
		Status:   http.StatusMethodNotAllowed,
		Detail:   "method DELETE not allowed",
		Instance: "/api/v1/todos",
	}, resp)
}

func TestNewErrorResponse_StoredRecordHasNoFieldDetails(t *testing.T) {
	t.Parallel()

	err := &domain.StoredRecordError{
		Index: 2,
		Err:   &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}},
	}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/todos", nil)

	got := dto.NewErrorResponse(r, err)

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Nil(t, got.Errors)
	assert.Equal(t, "stored todo 2: validation error: title: is required", got.Detail)
}
