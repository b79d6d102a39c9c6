// Package main serves the todo core as Model Context Protocol tools over
// stdio. Stdout carries the protocol, so logs are written to stderr (or to
// log.file when configured).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/do/v2"

	adaptmcp "github.com/jsamuelsen11/go-todo-core/internal/adapters/mcp"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/container"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

const (
	defaultProfile = "local"
	serverVersion  = "0.1.0"

	otelShutdownTimeout = 5 * time.Second
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
		profile = defaultProfile
	}

	var opts []config.Option
	if dir := os.Getenv("APP_CONFIG_DIR"); dir != "" {
		opts = append(opts, config.WithConfigDir(dir))
	}
	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out, closeLog, err := logging.Output(cfg.Log.File, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, out)

	otel, err := telemetry.Setup(context.Background(), cfg.Telemetry, telemetry.WithWriter(out))
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

	svc, err := do.Invoke[ports.TodoService](injector)
	if err != nil {
		return fmt.Errorf("resolving todo service: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "serving mcp over stdio",
		slog.String("profile", profile),
		slog.String("storage", cfg.Storage.Backend),
	)

	stdio := server.NewStdioServer(adaptmcp.NewServer(svc, serverVersion, logger))
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serving mcp: %w", err)
	}

	logger.InfoContext(ctx, "mcp server stopped")
	return nil
}
