// Package memory provides an in-process implementation of ports.KeyValueStore.
// Data lives only as long as the Store value; it is intended for local
// development and tests.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// Compile-time interface check.
var _ ports.KeyValueStore = (*Store)(nil)

// Store is a map-backed key-value store safe for concurrent use. Values are
// copied on the way in and out so callers cannot alias stored bytes.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
}

// New creates an empty Store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Get returns a copy of the value at key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// Set stores a copy of value at key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = bytes.Clone(value)
	s.writes++
	return nil
}

// Seed replaces the raw value at key without counting as a write. Tests use
// it to plant hand-edited or corrupt content.
func (s *Store) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = bytes.Clone(value)
}

// Raw returns the stored bytes at key for inspection.
func (s *Store) Raw(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return bytes.Clone(v), ok
}

// Writes returns the number of successful Set calls.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
