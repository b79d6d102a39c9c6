// Package telemetry sets up OpenTelemetry tracing and metrics for the todo
// binaries and registers the instruments the HTTP middleware and the
// key-value client record into.
//
//	providers, err := telemetry.Setup(ctx, cfg.Telemetry, telemetry.WithWriter(os.Stderr))
//	defer providers.Shutdown(ctx)
//	metrics := providers.Metrics // nil when telemetry is disabled
//
// The stdout exporter writes to the configured writer, not os.Stdout, so the
// terminal UI and the stdio MCP server can keep stdout to themselves.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/go-todo-core/internal/platform/config"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrKVOperation = attribute.Key("kv.operation")
	AttrResult      = attribute.Key("result")
)

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// Metrics holds the instruments shared by the HTTP and storage layers.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	KVOperationDuration   metric.Float64Histogram
	KVOperationTotal      metric.Int64Counter
}

// Option configures exporter construction.
type Option func(*options)

type options struct {
	writer io.Writer
}

// WithWriter directs the stdout exporters to w. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

func buildOptions(opts []Option) options {
	o := options{writer: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Providers bundles the SDK providers and the instruments registered on them.
// Every field is nil when telemetry is disabled.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup installs global tracer and meter providers per cfg. A disabled config
// yields empty Providers, leaving the otel no-op globals in place.
func Setup(ctx context.Context, cfg config.TelemetryConfig, opts ...Option) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	tp, err := InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint, opts...)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := NewMetrics(mp, cfg.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &Providers{Tracer: tp, Meter: mp, Metrics: metrics}, nil
}

// Shutdown flushes and stops whichever providers are present.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// InitTracer creates a batching TracerProvider for exporter ("otlp" or
// "stdout"), installs it globally together with the W3C trace-context and
// baggage propagators, and returns it for shutdown.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string, opts ...Option) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint, buildOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates a periodically exporting MeterProvider for exporter
// ("otlp" or "stdout") and installs it globally.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string, opts ...Option) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint, buildOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics registers the HTTP server and key-value client instruments on a
// meter scoped to serviceName.
func NewMetrics(mp *sdkmetric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)

	var (
		m   Metrics
		err error
	)
	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of todo API requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}
	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Todo API requests served"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}
	if m.KVOperationDuration, err = meter.Float64Histogram("kv.client.operation.duration",
		metric.WithDescription("Duration of todo list reads and writes against the key-value store"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating kv.client.operation.duration: %w", err)
	}
	if m.KVOperationTotal, err = meter.Int64Counter("kv.client.operation.total",
		metric.WithDescription("Key-value store operations, including breaker rejections"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, fmt.Errorf("creating kv.client.operation.total: %w", err)
	}

	return &m, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string, o options) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		host, secure, err := parseEndpoint(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if !secure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(o.writer))
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string, o options) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		host, secure, err := parseEndpoint(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if !secure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New(stdoutmetric.WithWriter(o.writer))
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

// parseEndpoint splits an OTLP endpoint such as "http://otel-collector:4318"
// into its host:port and whether TLS is used. A bare "host:port" is accepted
// and treated as plaintext.
func parseEndpoint(endpoint string) (host string, secure bool, err error) {
	if endpoint == "" {
		return "", false, errEmptyEndpoint
	}
	u, perr := url.Parse(endpoint)
	if perr != nil || u.Host == "" {
		return endpoint, false, nil
	}
	return u.Host, u.Scheme == "https", nil
}
