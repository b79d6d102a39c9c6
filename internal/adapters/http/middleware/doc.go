// Package middleware provides the inbound HTTP request pipeline for the todo
// API. NewRouter installs it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Status capture uses chi's WrapResponseWriter so every layer observes the
// same status and byte count.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// wrap returns w as a chi WrapResponseWriter, reusing it when an outer
// layer already wrapped the writer.
func wrap(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	if ww, ok := w.(chimw.WrapResponseWriter); ok {
		return ww
	}
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf reports the response status, treating an untouched writer as 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

// routeOf returns the matched chi route pattern (e.g. "/api/v1/todos") and
// falls back to the raw path outside a chi router. Call it after the
// downstream handler ran, when routing has completed.
func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
