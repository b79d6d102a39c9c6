// Package file provides a ports.KeyValueStore that keeps one file per key in
// a directory. Values are written to a temporary file and renamed into place,
// so a reader never observes a half-written value.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jsamuelsen11/go-todo-core/internal/domain"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

const (
	fileExt  = ".json"
	dirPerm  = 0o755
	filePerm = 0o644
)

// Compile-time interface check.
var _ ports.KeyValueStore = (*Store)(nil)

// Store is a directory-backed key-value store. It serializes writers within
// the process; concurrent processes sharing a directory race on whole-file
// replacement (last rename wins).
type Store struct {
	dir string
	mu  sync.RWMutex
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("file store: directory must not be empty")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("file store: create dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Get reads the file for key. A missing file means the key was never written.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	p, err := s.path(key)
	if err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	return b, true, nil
}

// Set replaces the file for key with value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, filepath.Base(p)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("chmod file: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

// path maps key to its file, rejecting keys that could escape the directory.
func (s *Store) path(key string) (string, error) {
	switch {
	case strings.TrimSpace(key) == "":
		return "", &domain.ValidationError{Fields: map[string]string{"key": domain.MsgRequired}}
	case strings.ContainsAny(key, `/\`):
		return "", &domain.ValidationError{Fields: map[string]string{"key": "must not contain path separators"}}
	case strings.Contains(key, ".."):
		return "", &domain.ValidationError{Fields: map[string]string{"key": "must not contain path traversal"}}
	}
	return filepath.Join(s.dir, key+fileExt), nil
}
