package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-todo-core/internal/domain"
)

const (
	problemContentType = "application/problem+json"
	problemTypeBlank   = "about:blank"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail locates one invalid field, e.g. "body.title".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusFor lists the error kinds with a dedicated status, checked in order
// with errors.Is. Anything else, storage corruption included, is a 500.
var statusFor = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrNotImplemented, http.StatusNotImplemented},
	{domain.ErrUnavailable, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// NewErrorResponse describes err as a problem document for r. A stored
// record that fails validation is server-side damage: it is a 500 without
// field details, whatever the request carried.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	var rerr *domain.StoredRecordError
	if errors.As(err, &rerr) {
		return newProblem(r, http.StatusInternalServerError, err.Error())
	}

	resp := newProblem(r, statusOf(err), err.Error())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a problem document for failures that carry no domain
// error, such as an unknown route.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, newProblem(r, status, detail))
}

func newProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     problemTypeBlank,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

func statusOf(err error) int {
	for _, m := range statusFor {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
