// Package mcp exposes the todo service as Model Context Protocol tools so
// that assistants can create and list todos over stdio.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

const serverName = "todo-core"

// NewServer creates an MCP server with the create_todo and list_todos tools
// registered against svc.
func NewServer(svc ports.TodoService, version string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	create := NewCreateTodoTool(svc, logger)
	s.AddTool(create.Definition(), create.Handle)

	list := NewListTodosTool(svc, logger)
	s.AddTool(list.Definition(), list.Handle)

	return s
}

const instructions = `This server manages a single ordered list of todos.
Use create_todo to add a todo by title and list_todos to read every todo in the order it was added.`
