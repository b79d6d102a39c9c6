package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, the terminal UI, MCP tools). These are the only two entry points
// into the core.
type TodoService interface {
	// CreateTodo creates and persists a todo with the given raw title and a
	// freshly generated ID. The title is trimmed.
	// Returns domain.ErrValidation if the title is empty or whitespace-only.
	CreateTodo(ctx context.Context, title string) (todo.Todo, error)

	// ListTodos returns all todos in insertion order.
	// Returns domain.ErrStorageCorruption if the stored list cannot be read.
	ListTodos(ctx context.Context) ([]todo.Todo, error)
}
