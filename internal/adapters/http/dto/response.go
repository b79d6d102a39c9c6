// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoListResponse represents a list of todos in HTTP responses.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID(),
		Title:     t.Title(),
		Completed: t.Completed(),
	}
}

// ToTodoListResponse converts a slice of domain Todo entities to an HTTP list
// response DTO, preserving order.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i, t := range todos {
		items[i] = ToTodoResponse(t)
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
	}
}

// Health status values reported by the liveness and readiness endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of GET /health/live and GET /health/ready.
// Checks maps each dependency to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse folds health check results into a response and reports
// whether every check passed. No checks at all counts as ready.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	healthy := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			healthy = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !healthy {
		resp.Status = HealthNotReady
	}
	return resp, healthy
}
