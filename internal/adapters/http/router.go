// Package http is the inbound HTTP adapter for the todo core: routing, the
// server lifecycle, and (in subpackages) handlers, DTOs and middleware.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/handlers"
)

// NewRouter mounts the probes and the versioned todo API. Middleware wraps
// every route, outermost first. Unknown routes and methods get RFC 9457
// bodies like every other error.
//
//	GET  /health/live
//	GET  /health/ready
//	GET  /api/v1/todos
//	POST /api/v1/todos
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound, fmt.Sprintf("no route for %s", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed,
			fmt.Sprintf("%s is not supported on %s", req.Method, req.URL.Path))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Get("/api/v1/todos", todoHandler.ListTodos)
	r.Post("/api/v1/todos", todoHandler.CreateTodo)

	return r
}
