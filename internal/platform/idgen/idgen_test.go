package idgen_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-todo-core/internal/platform/idgen"
)

func TestUUID(t *testing.T) {
	t.Parallel()

	a, b := idgen.UUID(), idgen.UUID()
	if a == b {
		t.Errorf("UUID() returned %q twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("UUID() = %q, not a valid UUID: %v", a, err)
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	next := idgen.Sequence("id")
	for _, want := range []string{"id-1", "id-2", "id-3"} {
		if got := next(); got != want {
			t.Errorf("next() = %q, want %q", got, want)
		}
	}

	other := idgen.Sequence("id")
	if got := other(); got != "id-1" {
		t.Errorf("independent sequence next() = %q, want %q", got, "id-1")
	}
}

func TestSequence_Concurrent(t *testing.T) {
	t.Parallel()

	next := idgen.Sequence("t")
	const n = 100

	var (
		mu   sync.Mutex
		seen = make(map[string]bool, n)
		wg   sync.WaitGroup
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := next()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("unique ids = %d, want %d", len(seen), n)
	}
}
