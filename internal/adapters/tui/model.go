// Package tui is the interactive terminal controller: an input line that
// creates todos and a list that is re-rendered from the service after every
// successful create.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

const titleCharLimit = 200

// todosLoadedMsg carries the result of a ListTodos call.
type todosLoadedMsg struct {
	todos []todo.Todo
	err   error
}

// todoCreatedMsg carries the result of a CreateTodo call.
type todoCreatedMsg struct {
	err error
}

// Model is the Bubble Tea model for the todo screen.
type Model struct {
	ctx   context.Context
	svc   ports.TodoService
	input textinput.Model
	todos []todo.Todo
	err   error

	loaded     bool
	submitting bool // a CreateTodo is in flight; Enter is ignored
	quitting   bool
}

// New creates a Model bound to svc. ctx bounds every service call the model
// issues.
func New(ctx context.Context, svc ports.TodoService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = titleCharLimit
	ti.Focus()

	return Model{
		ctx:   ctx,
		svc:   svc,
		input: ti,
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, svc ports.TodoService, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(New(ctx, svc), opts...).Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}

// Init loads the current list and starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadTodos())
}

// Update handles key presses and service results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.createTodo(m.input.Value())
		}

	case todoCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.input.Reset()
		return m, m.loadTodos()

	case todosLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.todos = msg.todos
		m.loaded = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input, any error, and the list.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Todos"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case !m.loaded:
	case len(m.todos) == 0:
		b.WriteString(emptyStyle.Render(emptyPlaceholder))
		b.WriteString("\n")
	default:
		for _, t := range m.todos {
			b.WriteString(itemStyle.Render(bullet + " " + t.Title()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: add • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) loadTodos() tea.Cmd {
	return func() tea.Msg {
		todos, err := m.svc.ListTodos(m.ctx)
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m Model) createTodo(title string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.CreateTodo(m.ctx, title)
		return todoCreatedMsg{err: err}
	}
}
