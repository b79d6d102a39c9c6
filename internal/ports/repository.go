package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-core/internal/domain"
	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
)

// TodoRepository defines the persistence port for todos.
// Implemented by storage adapters; called by the application layer.
type TodoRepository interface {
	// GetAll returns every persisted todo in insertion order.
	// Returns an empty slice, not an error, when nothing has been stored yet.
	// Returns domain.ErrStorageCorruption if the persisted value cannot be parsed.
	GetAll(ctx context.Context) ([]todo.Todo, error)

	// Save appends t to the persisted collection and returns it unchanged.
	// Returns domain.ErrConflict if a todo with the same ID is already stored.
	Save(ctx context.Context, t todo.Todo) (todo.Todo, error)
}

// IDGenerator returns a fresh, globally unique todo identifier on each call.
// Consumers never check uniqueness; the generator alone guarantees it.
type IDGenerator func() string

// UnimplementedTodoRepository can be embedded by TodoRepository
// implementations that only provide part of the port. Every method it
// supplies fails with a *domain.NotImplementedError.
type UnimplementedTodoRepository struct{}

// Compile-time check that the embeddable base satisfies the port.
var _ TodoRepository = UnimplementedTodoRepository{}

// GetAll always fails with domain.ErrNotImplemented.
func (UnimplementedTodoRepository) GetAll(context.Context) ([]todo.Todo, error) {
	return nil, &domain.NotImplementedError{Operation: "GetAll"}
}

// Save always fails with domain.ErrNotImplemented.
func (UnimplementedTodoRepository) Save(context.Context, todo.Todo) (todo.Todo, error) {
	return todo.Todo{}, &domain.NotImplementedError{Operation: "Save"}
}
