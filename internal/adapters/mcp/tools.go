package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// Tool names.
const (
	ToolCreateTodo = "create_todo"
	ToolListTodos  = "list_todos"
)

// todoResult is the JSON shape of a todo in tool results.
type todoResult struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func toResult(t todo.Todo) todoResult {
	return todoResult{ID: t.ID(), Title: t.Title(), Completed: t.Completed()}
}

// CreateTodoTool handles the create_todo tool.
type CreateTodoTool struct {
	svc    ports.TodoService
	logger *slog.Logger
}

// NewCreateTodoTool creates a CreateTodoTool. A nil logger discards output.
func NewCreateTodoTool(svc ports.TodoService, logger *slog.Logger) *CreateTodoTool {
	return &CreateTodoTool{svc: svc, logger: orDiscard(logger)}
}

// Definition returns the tool schema.
func (t *CreateTodoTool) Definition() mcp.Tool {
	return mcp.NewTool(ToolCreateTodo,
		mcp.WithDescription("Create a todo. The title is trimmed and must not be blank; the todo starts incomplete."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the todo"),
		),
	)
}

// Handle creates the todo and returns it as JSON. Service errors, including
// validation failures, are reported as tool errors.
func (t *CreateTodoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	created, err := t.svc.CreateTodo(ctx, title)
	if err != nil {
		t.logger.WarnContext(ctx, "create_todo failed",
			slog.String("operation", ToolCreateTodo),
			slog.Any("error", err),
		)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(toResult(created))
}

// ListTodosTool handles the list_todos tool.
type ListTodosTool struct {
	svc    ports.TodoService
	logger *slog.Logger
}

// NewListTodosTool creates a ListTodosTool. A nil logger discards output.
func NewListTodosTool(svc ports.TodoService, logger *slog.Logger) *ListTodosTool {
	return &ListTodosTool{svc: svc, logger: orDiscard(logger)}
}

// Definition returns the tool schema.
func (t *ListTodosTool) Definition() mcp.Tool {
	return mcp.NewTool(ToolListTodos,
		mcp.WithDescription("List every todo in insertion order."),
	)
}

// Handle returns all todos as a JSON array.
func (t *ListTodosTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	todos, err := t.svc.ListTodos(ctx)
	if err != nil {
		t.logger.WarnContext(ctx, "list_todos failed",
			slog.String("operation", ToolListTodos),
			slog.Any("error", err),
		)
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := make([]todoResult, len(todos))
	for i, td := range todos {
		out[i] = toResult(td)
	}
	return jsonResult(out)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding tool result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
