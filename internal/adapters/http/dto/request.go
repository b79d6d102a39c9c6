package dto

import (
	"github.com/jsamuelsen11/go-todo-core/internal/domain"
	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
)

// CreateTodoRequest is the body of POST /api/v1/todos.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// Validate rejects a blank title before an ID is generated for it. The use
// case trims and checks the title again.
func (r *CreateTodoRequest) Validate() error {
	if todo.TrimTitle(r.Title) != "" {
		return nil
	}
	return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}
}
