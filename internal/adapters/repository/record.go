package repository

import (
	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
)

// todoRecord is the persisted shape of one todo inside the stored list.
type todoRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// toDomainTodo rebuilds a Todo from a stored record, re-running the same
// validation as fresh construction.
func toDomainTodo(r todoRecord) (todo.Todo, error) {
	return todo.New(todo.Params{
		ID:        r.ID,
		Title:     r.Title,
		Completed: r.Completed,
	})
}

// toRecords converts domain todos to their persisted shape, preserving order.
func toRecords(todos []todo.Todo) []todoRecord {
	records := make([]todoRecord, len(todos))
	for i, t := range todos {
		records[i] = todoRecord{
			ID:        t.ID(),
			Title:     t.Title(),
			Completed: t.Completed(),
		}
	}
	return records
}
