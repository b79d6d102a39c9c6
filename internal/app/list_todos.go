package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// ListTodosUseCase returns every stored todo in insertion order.
type ListTodosUseCase struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// NewListTodosUseCase creates a ListTodosUseCase. A nil logger discards output.
func NewListTodosUseCase(repo ports.TodoRepository, logger *slog.Logger) *ListTodosUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ListTodosUseCase{repo: repo, logger: logger}
}

// Execute delegates to the repository without filtering or sorting.
func (uc *ListTodosUseCase) Execute(ctx context.Context) ([]todo.Todo, error) {
	uc.logger.InfoContext(ctx, "listing todos")

	todos, err := uc.repo.GetAll(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}
