// Package kvclient wraps a ports.KeyValueStore with a circuit breaker,
// per-call timeout, OpenTelemetry tracing, and operation metrics.
//
// The client applies processing in this order:
//
//	Circuit Breaker → Timeout → OTEL Span → Store
//
// Construction:
//
//	store := kvclient.New(backend, &cfg.Storage, "file", metrics, logger)
//
// The client is itself a ports.KeyValueStore, so the repository adapter never
// knows whether it is talking to a decorated store or a raw backend. There is
// no retry: a failed operation is reported to the caller as-is.
package kvclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-todo-core/internal/domain"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-core/internal/ports"
)

// Operation names used in spans, metrics, and logs.
const (
	opGet = "GET"
	opSet = "SET"
)

// Compile-time interface checks.
var (
	_ ports.KeyValueStore = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client is an instrumented key-value store with a circuit breaker.
type Client struct {
	store     ports.KeyValueStore
	storeName string
	timeout   time.Duration
	breaker   *gobreaker.CircuitBreaker[[]byte]
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// New wraps store. The storeName identifies the backend in traces, metrics,
// and health output (e.g., "file"). If metrics is nil, metric recording is
// skipped.
func New(store ports.KeyValueStore, cfg *config.StorageConfig, storeName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        storeName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		store:     store,
		storeName: storeName,
		timeout:   cfg.Timeout,
		breaker:   cb,
		metrics:   metrics,
		logger:    logger,
	}
}

// Get reads key through the breaker.
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var found bool
	value, err := c.execute(ctx, opGet, key, func(ctx context.Context) ([]byte, error) {
		v, ok, err := c.store.Get(ctx, key)
		found = ok
		return v, err
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}

// Set writes key through the breaker.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	_, err := c.execute(ctx, opSet, key, func(ctx context.Context) ([]byte, error) {
		return nil, c.store.Set(ctx, key, value)
	})
	return err
}

// Name returns the backend identifier (e.g., "postgres").
func (c *Client) Name() string {
	return "kv:" + c.storeName
}

// HealthCheck reports backend availability based on the circuit breaker
// state. No store call is made.
//
// State mapping:
//   - "closed"    returns nil.
//   - "half-open" returns an error indicating degraded state.
//   - "open"      returns an error indicating failure.
func (c *Client) HealthCheck(_ context.Context) error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.storeName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.storeName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.storeName, state)
	}
}

func (c *Client) execute(ctx context.Context, op, key string, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	start := time.Now()

	value, err := c.breaker.Execute(func() ([]byte, error) {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		spanCtx, span := c.startSpan(callCtx, op, key)
		defer span.End()

		v, err := fn(spanCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return v, err
	})

	c.recordMetrics(ctx, op, start, err)

	if isBreakerRejection(err) {
		c.logger.WarnContext(ctx, "kv operation rejected",
			slog.String("operation", op),
			slog.String("store", c.storeName),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s %s: %w: %w", c.storeName, op, domain.ErrUnavailable, err)
	}
	return value, err
}

// startSpan creates an OTEL client span for the store operation.
func (c *Client) startSpan(ctx context.Context, op, key string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("kvclient")

	return tracer.Start(ctx, "kv "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("kv.operation", op),
			attribute.String("kv.key", key),
			attribute.String("peer.service", c.storeName),
		),
	)
}

// recordMetrics records operation duration and count. Metrics are recorded
// outside the circuit breaker so that rejections are captured. Safe to call
// with nil metrics.
func (c *Client) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	result := "success"
	switch {
	case isBreakerRejection(err):
		result = "circuit_open"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrKVOperation.String(op),
		telemetry.AttrPeerService.String(c.storeName),
		telemetry.AttrResult.String(result),
	)

	c.metrics.KVOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.KVOperationTotal.Add(ctx, 1, attrs)
}

// isSuccessful decides which errors count against the breaker. Caller
// mistakes and caller cancellation say nothing about backend health.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, context.Canceled)
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
