// Package container wires the todo core into a samber/do injector. All entry
// points (HTTP server, terminal UI, MCP server) share this graph and differ
// only in the inbound adapter they resolve on top of it.
//
// The caller provides *config.Config, *slog.Logger and *telemetry.Metrics
// (which may be nil when telemetry is disabled) before calling Register.
package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/kv/file"
	"github.com/jsamuelsen11/go-todo-core/internal/adapters/kv/memory"
	"github.com/jsamuelsen11/go-todo-core/internal/adapters/kv/postgres"
	"github.com/jsamuelsen11/go-todo-core/internal/adapters/repository"
	"github.com/jsamuelsen11/go-todo-core/internal/app"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/health"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/idgen"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/kvclient"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// postgresPool closes the pool when the injector shuts down.
type postgresPool struct {
	*pgxpool.Pool
}

// Shutdown implements do.Shutdowner.
func (p postgresPool) Shutdown() {
	p.Close()
}

// Register provides the storage backend selected by cfg.Storage.Backend and
// everything layered on top of it, ending in ports.TodoService and
// ports.HealthRegistry. Providers are lazy; nothing is opened until the
// first Invoke.
func Register(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	registerBackend(injector, cfg)

	do.Provide(injector, func(i do.Injector) (*kvclient.Client, error) {
		backend, err := do.Invoke[ports.KeyValueStore](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return kvclient.New(backend, &cfg.Storage, cfg.Storage.Backend, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoRepository, error) {
		client, err := do.Invoke[*kvclient.Client](i)
		if err != nil {
			return nil, err
		}
		return repository.NewTodoRepository(client, cfg.Storage.Key, logger), nil
	})

	do.ProvideValue(injector, ports.IDGenerator(idgen.UUID))

	do.Provide(injector, func(i do.Injector) (*app.CreateTodoUseCase, error) {
		repo, err := do.Invoke[ports.TodoRepository](i)
		if err != nil {
			return nil, err
		}
		newID := do.MustInvoke[ports.IDGenerator](i)
		return app.NewCreateTodoUseCase(repo, newID, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.ListTodosUseCase, error) {
		repo, err := do.Invoke[ports.TodoRepository](i)
		if err != nil {
			return nil, err
		}
		return app.NewListTodosUseCase(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		create, err := do.Invoke[*app.CreateTodoUseCase](i)
		if err != nil {
			return nil, err
		}
		list := do.MustInvoke[*app.ListTodosUseCase](i)
		return app.NewTodoService(create, list), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		client, err := do.Invoke[*kvclient.Client](i)
		if err != nil {
			return nil, err
		}
		registry := health.New(health.WithCheckTimeout(cfg.Storage.Timeout))
		registry.Register(client)
		if cfg.Storage.Backend == config.BackendPostgres {
			registry.Register(do.MustInvoke[*postgres.Store](i))
		}
		return registry, nil
	})
}

func registerBackend(injector do.Injector, cfg *config.Config) {
	st := cfg.Storage

	switch st.Backend {
	case config.BackendMemory:
		do.Provide(injector, func(_ do.Injector) (ports.KeyValueStore, error) {
			return memory.New(), nil
		})

	case config.BackendFile:
		do.Provide(injector, func(_ do.Injector) (ports.KeyValueStore, error) {
			store, err := file.New(st.File.Dir)
			if err != nil {
				return nil, err
			}
			return store, nil
		})

	case config.BackendPostgres:
		do.Provide(injector, func(_ do.Injector) (postgresPool, error) {
			pool, err := postgres.Open(context.Background(), st.Postgres.DSN, st.Postgres.MaxConns)
			if err != nil {
				return postgresPool{}, err
			}
			return postgresPool{Pool: pool}, nil
		})

		do.Provide(injector, func(i do.Injector) (*postgres.Store, error) {
			pool, err := do.Invoke[postgresPool](i)
			if err != nil {
				return nil, err
			}
			store := postgres.New(pool.Pool)
			if st.Postgres.Migrate {
				ctx, cancel := context.WithTimeout(context.Background(), st.Timeout)
				defer cancel()
				if err := store.Migrate(ctx); err != nil {
					return nil, err
				}
			}
			return store, nil
		})

		do.Provide(injector, func(i do.Injector) (ports.KeyValueStore, error) {
			store, err := do.Invoke[*postgres.Store](i)
			if err != nil {
				return nil, err
			}
			return store, nil
		})

	default:
		do.Provide(injector, func(_ do.Injector) (ports.KeyValueStore, error) {
			return nil, fmt.Errorf("unsupported storage backend %q", st.Backend)
		})
	}
}
