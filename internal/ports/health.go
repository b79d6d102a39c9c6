package ports

import "context"

// HealthChecker reports whether one dependency of the todo core, such as the
// key-value store behind the repository, can currently serve requests.
type HealthChecker interface {
	// Name keys the result in readiness output, e.g. "kv:file" or "postgres".
	Name() string
	// HealthCheck returns nil when healthy. It must honor ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness probe.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier checker with the same name.
	Register(checker HealthChecker)
	// CheckAll runs every checker and maps each name to its result; nil
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
