package daemon

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "sjwd"

// tracing owns the process-wide tracer provider while tracing is enabled.
type tracing struct {
	provider *sdktrace.TracerProvider
	output   io.Closer
}

func startTracing(config TracingConfig) (*tracing, error) {
	writer, closer, err := openTraceOutput(config.Output)
	if err != nil {
		return nil, err
	}

	options := []stdouttrace.Option{stdouttrace.WithWriter(writer)}
	if config.Pretty {
		options = append(options, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(options...)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		res = resource.Default()
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return &tracing{provider: provider, output: closer}, nil
}

func openTraceOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "stdout", "":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	default:
		file, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open trace output %s: %w", output, err)
		}
		return file, file, nil
	}
}

// Shutdown flushes pending spans.
func (t *tracing) Shutdown(ctx context.Context) error {
	err := t.provider.Shutdown(ctx)
	if t.output != nil {
		if closeErr := t.output.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
