// Package main is the HTTP entry point for the todo core. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-todo-core/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-core/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-todo-core/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/container"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, test, prod)")
	}

	var opts []config.Option
	if dir := os.Getenv("APP_CONFIG_DIR"); dir != "" {
		opts = append(opts, config.WithConfigDir(dir))
	}
	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := telemetry.Setup(context.Background(), cfg.Telemetry, telemetry.WithWriter(os.Stderr))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	defer func() { _ = injector.Shutdown() }()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	container.Register(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)

	// Resolving the server builds the whole graph and opens storage.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("received shutdown signal",
			slog.String("profile", profile),
			slog.String("storage", cfg.Storage.Backend),
		)
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc, err := do.Invoke[ports.TodoService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry, err := do.Invoke[ports.HealthRegistry](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH, err := do.Invoke[*handlers.TodoHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(todoH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
