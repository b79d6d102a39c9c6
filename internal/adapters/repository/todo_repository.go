// Package repository implements ports.TodoRepository over a key-value store.
// The whole todo list lives as one JSON array under a single key and every
// Save rewrites it in full.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-todo-core/internal/domain"
	"github.com/jsamuelsen11/go-todo-core/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// DefaultKey is the storage key used when none is configured.
const DefaultKey = "todos"

// Compile-time check that TodoRepository implements ports.TodoRepository.
var _ ports.TodoRepository = (*TodoRepository)(nil)

// TodoRepository persists todos as a single serialized list. It is the only
// component that reads or writes its key.
type TodoRepository struct {
	store  ports.KeyValueStore
	key    string
	logger *slog.Logger

	// mu serializes the read-append-write in Save. It does not protect
	// against other processes writing the same key.
	mu sync.Mutex
}

// NewTodoRepository creates a repository bound to key in store. An empty key
// falls back to DefaultKey; a nil logger discards output.
func NewTodoRepository(store ports.KeyValueStore, key string, logger *slog.Logger) *TodoRepository {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoRepository{
		store:  store,
		key:    key,
		logger: logger,
	}
}

// Key returns the storage key this repository owns.
func (r *TodoRepository) Key() string {
	return r.key
}

// GetAll returns every stored todo in insertion order. A key that was never
// written yields an empty slice.
func (r *TodoRepository) GetAll(ctx context.Context) ([]todo.Todo, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", r.key, err)
	}
	if !found {
		return []todo.Todo{}, nil
	}

	records, err := r.decode(raw)
	if err != nil {
		r.logger.ErrorContext(ctx, "stored todo list is corrupt",
			slog.String("operation", "GetAll"),
			slog.String("key", r.key),
			slog.Any("error", err),
		)
		return nil, err
	}

	todos := make([]todo.Todo, 0, len(records))
	for i, rec := range records {
		t, err := toDomainTodo(rec)
		if err != nil {
			return nil, &domain.StoredRecordError{Index: i, Err: err}
		}
		todos = append(todos, t)
	}
	return todos, nil
}

// Save appends t to the stored list and writes the whole list back. A todo
// whose ID is already stored is rejected with domain.ErrConflict and an
// invalid (e.g. zero) Todo with its *domain.ValidationError; neither writes.
func (r *TodoRepository) Save(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	if err := t.Validate(); err != nil {
		return todo.Todo{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	todos, err := r.GetAll(ctx)
	if err != nil {
		return todo.Todo{}, err
	}

	for _, existing := range todos {
		if existing.ID() == t.ID() {
			return todo.Todo{}, fmt.Errorf("todo %q already exists: %w", t.ID(), domain.ErrConflict)
		}
	}

	data, err := json.Marshal(toRecords(append(todos, t)))
	if err != nil {
		return todo.Todo{}, fmt.Errorf("encoding todo list: %w", err)
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		return todo.Todo{}, fmt.Errorf("writing %q: %w", r.key, err)
	}

	r.logger.DebugContext(ctx, "todo list written",
		slog.String("key", r.key),
		slog.Int("count", len(todos)+1),
	)
	return t, nil
}

// decode parses the raw stored value. Anything that is not a JSON array of
// well-typed records is reported as corruption.
func (r *TodoRepository) decode(raw []byte) ([]todoRecord, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, r.corruption(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, r.corruption(errors.New("unexpected data after JSON value"))
	}

	if err := storedListSchema.Validate(doc); err != nil {
		return nil, r.corruption(errors.New(firstSchemaError(err)))
	}

	var records []todoRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, r.corruption(err)
	}
	return records, nil
}

func (r *TodoRepository) corruption(err error) error {
	return &domain.StorageCorruptionError{Key: r.key, Err: err}
}
