package tracing

import (
	"context"
	"fmt"

	"codeberg.org/devops-project/server/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

type Options struct {
	ServiceName    string
	ServiceVersion string
	Exporter       string
	Endpoint       string
}

// Initialize installs the global tracer provider and returns its shutdown
// func. The "none" exporter keeps otel's no-op provider.
func Initialize(ctx context.Context, opts Options) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if opts.Exporter == "" || opts.Exporter == ExporterNone {
		logger.Debug("tracing disabled")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := newExporter(ctx, opts)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(opts.ServiceName),
			semconv.ServiceVersion(opts.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(tracerProvider)

	logger.Info("tracing initialized", "exporter", opts.Exporter, "endpoint", opts.Endpoint)

	return tracerProvider.Shutdown, nil
}

func newExporter(ctx context.Context, opts Options) (sdktrace.SpanExporter, error) {
	switch opts.Exporter {
	case ExporterStdout:
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout exporter: %w", err)
		}
		return exporter, nil

	case ExporterOTLP:
		if opts.Endpoint == "" {
			return nil, fmt.Errorf("otlp exporter requires an endpoint")
		}

		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(opts.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		return exporter, nil
	}

	return nil, fmt.Errorf("unknown tracing exporter %q", opts.Exporter)
}
