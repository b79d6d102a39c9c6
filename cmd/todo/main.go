// Package main is the terminal entry point for the todo core. It renders an
// interactive list with an input line; Enter adds a task, Esc quits.
//
// The program owns the terminal, so logs go to log.file when configured and
// are discarded otherwise.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-todo-core/internal/adapters/tui"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/container"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

const (
	defaultProfile      = "local"
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

	out, closeLog, err := logging.Output(cfg.Log.File, io.Discard)
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "starting terminal ui")
	if err := tui.Run(ctx, svc); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
