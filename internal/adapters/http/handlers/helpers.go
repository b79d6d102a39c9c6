package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-core/internal/domain"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies; a todo is a single short title.
const maxJSONBodyBytes = 64 << 10

// writeJSON encodes v with status. Encoding failures can only be logged since
// the status line is already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody reads exactly one JSON value from the request body into dst.
// An empty body, malformed JSON, trailing data, or an oversized body is a
// validation error on "body", written as a 400 before returning false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))

	msg := ""
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			msg = domain.MsgRequired
		case errors.As(err, &tooLarge):
			msg = "too large"
		default:
			msg = "invalid JSON"
		}
	} else if dec.More() {
		msg = "must contain a single JSON object"
	}

	if msg != "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
		return false
	}
	return true
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and runs its Validate method,
// writing the error response itself on failure.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
