// Package otel wires opt-in OTLP trace export for service processes.
package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Setup installs a global tracer provider exporting OTLP over HTTP when
// DUSKHAVEN_OTEL_ENDPOINT is set and DUSKHAVEN_OTEL_ENABLED is not
// "false". Otherwise the global provider is left untouched and the
// returned shutdown is a no-op. The caller defers shutdown to flush any
// pending spans.
func Setup(ctx context.Context, service string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	endpoint, ok := exportTarget()
	if !ok {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, err
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(service)))
	if err != nil {
		return noop, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return provider.Shutdown, nil
}

// exportTarget reads the export endpoint from the environment, reporting
// false when tracing is disabled or unconfigured.
func exportTarget() (string, bool) {
	if strings.EqualFold(os.Getenv("DUSKHAVEN_OTEL_ENABLED"), "false") {
		return "", false
	}
	endpoint := strings.TrimSpace(os.Getenv("DUSKHAVEN_OTEL_ENDPOINT"))
	return endpoint, endpoint != ""
}
