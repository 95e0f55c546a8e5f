// Package otel configures OpenTelemetry trace export for covidau processes.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/covidau/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings controls trace export. Export stays off until Endpoint is set.
type Settings struct {
	Endpoint    string  `env:"COVIDAU_OTEL_ENDPOINT"`
	Enabled     bool    `env:"COVIDAU_OTEL_ENABLED"      envDefault:"true"`
	SampleRatio float64 `env:"COVIDAU_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Active reports whether s should install a tracer provider.
func (s Settings) Active() bool {
	return s.Enabled && strings.TrimSpace(s.Endpoint) != ""
}

func (s Settings) sampler() sdktrace.Sampler {
	switch {
	case s.SampleRatio >= 1:
		return sdktrace.AlwaysSample()
	case s.SampleRatio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))
	}
}

// ShutdownFunc flushes pending spans.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// Setup reads Settings from the environment and calls SetupWith.
func Setup(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	var s Settings
	if err := config.ParseEnv(&s); err != nil {
		return noop, fmt.Errorf("otel settings: %w", err)
	}
	return SetupWith(ctx, serviceName, s)
}

// SetupWith installs a global tracer provider exporting to s.Endpoint over
// OTLP/HTTP. When s is inactive it returns a no-op shutdown and leaves the
// global provider untouched.
func SetupWith(ctx context.Context, serviceName string, s Settings) (ShutdownFunc, error) {
	if !s.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(s.Endpoint)))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceNamespace("covidau"),
	))
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(s.sampler()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown, nil
}
