// Package health tracks the downstream dependencies the readiness endpoint
// reports on: the storage client and, for the postgres backend, the database
// itself.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry runs registered checks concurrently. Checkers are keyed by Name;
// registering a second checker under the same name replaces the first.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Zero leaves checks bounded
// only by the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkers: make(map[string]ports.HealthChecker)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under checker.Name().
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs every check in parallel and returns the results keyed by
// name; nil means healthy. The checker set is snapshotted first, so a slow
// check never blocks Register.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	snapshot := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		snapshot[name] = c
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(snapshot))
	)
	for name, c := range snapshot {
		wg.Go(func() {
			err := r.check(ctx, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
		})
	}
	wg.Wait()

	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return c.HealthCheck(ctx)
}
