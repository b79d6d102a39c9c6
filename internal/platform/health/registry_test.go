package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-core/internal/platform/health"
	"github.com/jsamuelsen11/go-todo-core/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

// sleepyChecker blocks until its delay passes or ctx ends.
type sleepyChecker struct {
	name  string
	delay time.Duration
}

func (s sleepyChecker) Name() string { return s.name }

func (s sleepyChecker) HealthCheck(ctx context.Context) error {
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestCheckAll_ReportsEachChecker(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	r := health.New()
	r.Register(checker(t, "kv:postgres", nil))
	r.Register(checker(t, "postgres", refused))

	results := r.CheckAll(context.Background())

	require.Len(t, results, 2)
	assert.NoError(t, results["kv:postgres"])
	assert.ErrorIs(t, results["postgres"], refused)
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("kv:file")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["kv:file"], context.Canceled)
}

func TestRegister_SameNameReplaces(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("postgres")

	replaced := errors.New("second checker")

	r := health.New()
	r.Register(first)
	r.Register(checker(t, "postgres", replaced))

	results := r.CheckAll(context.Background())
	require.Len(t, results, 1)
	assert.ErrorIs(t, results["postgres"], replaced)
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	r := health.New()
	for _, name := range []string{"a", "b", "c", "d"} {
		r.Register(sleepyChecker{name: name, delay: 100 * time.Millisecond})
	}

	start := time.Now()
	results := r.CheckAll(context.Background())

	assert.Len(t, results, 4)
	assert.Less(t, time.Since(start), 350*time.Millisecond, "checks ran sequentially")
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	t.Parallel()

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(sleepyChecker{name: "postgres", delay: time.Minute})
	r.Register(checker(t, "kv:postgres", nil))

	results := r.CheckAll(context.Background())

	assert.ErrorIs(t, results["postgres"], context.DeadlineExceeded)
	assert.NoError(t, results["kv:postgres"])
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("kv:memory")
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
		} else {
			wg.Go(func() {
				r.CheckAll(context.Background())
			})
		}
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 1)
}
