// Package app provides the use cases that orchestrate the todo core. Each use
// case coordinates domain construction and persistence through port
// interfaces and contains no storage or presentation concerns.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// CreateTodoInput carries the raw user input for creating a todo.
type CreateTodoInput struct {
	Title string
}

// CreateTodoUseCase creates a todo with a generated ID and persists it.
type CreateTodoUseCase struct {
	repo   ports.TodoRepository
	newID  ports.IDGenerator
	logger *slog.Logger
}

// NewCreateTodoUseCase creates a CreateTodoUseCase. The generator is the only
// source of todo IDs; a nil logger discards output.
func NewCreateTodoUseCase(repo ports.TodoRepository, newID ports.IDGenerator, logger *slog.Logger) *CreateTodoUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CreateTodoUseCase{
		repo:   repo,
		newID:  newID,
		logger: logger,
	}
}

// Execute builds a new, incomplete todo from in and saves it. An invalid
// title fails with a *domain.ValidationError before anything is persisted.
func (uc *CreateTodoUseCase) Execute(ctx context.Context, in CreateTodoInput) (todo.Todo, error) {
	uc.logger.InfoContext(ctx, "creating todo")

	t, err := todo.New(todo.Params{
		ID:    uc.newID(),
		Title: in.Title,
	})
	if err != nil {
		uc.logger.InfoContext(ctx, "rejected todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return todo.Todo{}, err
	}

	saved, err := uc.repo.Save(ctx, t)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to save todo",
			slog.String("operation", "CreateTodo"),
			slog.String("id", t.ID()),
			slog.Any("error", err),
		)
		return todo.Todo{}, err
	}

	return saved, nil
}
