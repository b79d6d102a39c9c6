package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/kv/file"
	"github.com/jsamuelsen11/go-todo-core/internal/domain"
)

func newStore(t *testing.T) *file.Store {
	t.Helper()
	s, err := file.New(t.TempDir())
	if err != nil {
		t.Fatalf("file.New() error = %v", err)
	}
	return s
}

func TestNew_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := file.New(dir)
	if err != nil {
		t.Fatalf("file.New() error = %v", err)
	}
	if s.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", s.Dir(), dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("directory %q not created: %v", dir, err)
	}
}

func TestNew_EmptyDir(t *testing.T) {
	t.Parallel()

	if _, err := file.New("  "); err == nil {
		t.Fatal("file.New(\"  \") error = nil, want error")
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	v, found, err := s.Get(context.Background(), "todos")
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if found || v != nil {
		t.Errorf("Get() = (%q, %v), want (nil, false)", v, found)
	}
}

func TestStore_SetThenGet(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	ctx := context.Background()

	want := []byte(`[{"id":"id-1","title":"Buy milk","completed":false}]`)
	if err := s.Set(ctx, "todos", want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, found, err := s.Get(ctx, "todos")
	if err != nil || !found {
		t.Fatalf("Get() = (%q, %v, %v), want found value", got, found, err)
	}
	if string(got) != string(want) {
		t.Errorf("Get() = %q, want %q", got, want)
	}

	onDisk, err := os.ReadFile(filepath.Join(s.Dir(), "todos.json"))
	if err != nil {
		t.Fatalf("reading backing file: %v", err)
	}
	if string(onDisk) != string(want) {
		t.Errorf("backing file = %q, want %q", onDisk, want)
	}
}

func TestStore_SetOverwritesAndLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	ctx := context.Background()

	for _, v := range []string{`[1]`, `[1,2]`, `[]`} {
		if err := s.Set(ctx, "todos", []byte(v)); err != nil {
			t.Fatalf("Set(%s) error = %v", v, err)
		}
	}

	got, _, _ := s.Get(ctx, "todos")
	if string(got) != `[]` {
		t.Errorf("Get() = %q, want last written value", got)
	}

	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory entries = %v, want only todos.json", names)
	}
}

func TestStore_InvalidKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"whitespace", "  "},
		{"slash", "a/b"},
		{"backslash", `a\b`},
		{"traversal", "..todos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newStore(t)
			ctx := context.Background()

			if _, _, err := s.Get(ctx, tt.key); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Get(%q) error = %v, want ErrValidation", tt.key, err)
			}
			if err := s.Set(ctx, tt.key, []byte("x")); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Set(%q) error = %v, want ErrValidation", tt.key, err)
			}
		})
	}
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Set(ctx, "todos", []byte("[]")); !errors.Is(err, context.Canceled) {
		t.Errorf("Set() error = %v, want context.Canceled", err)
	}
	if _, _, err := s.Get(ctx, "todos"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get() error = %v, want context.Canceled", err)
	}
}
