package app

import (
	"context"

	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService for the inbound adapters by
// holding one instance of each use case.
type TodoService struct {
	create *CreateTodoUseCase
	list   *ListTodosUseCase
}

// NewTodoService creates a TodoService from its use cases.
func NewTodoService(create *CreateTodoUseCase, list *ListTodosUseCase) *TodoService {
	return &TodoService{create: create, list: list}
}

// CreateTodo creates and persists a todo titled title.
func (s *TodoService) CreateTodo(ctx context.Context, title string) (todo.Todo, error) {
	return s.create.Execute(ctx, CreateTodoInput{Title: title})
}

// ListTodos returns all todos in insertion order.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	return s.list.Execute(ctx)
}
