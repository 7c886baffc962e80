// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer installs a global TracerProvider according to the config and
// returns a Tracer handle. With tracing disabled the provider is a noop, so
// instrumented code paths stay cheap.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)

	if cfg == nil || !cfg.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer("timeclock-service")
		return t
	}

	exporter := newExporter(cfg)
	if exporter == nil {
		cfg.Logger.Warnf("no trace exporter configured, tracing to stdout")
	}

	opts := []sdktrace.TracerProviderOption{}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.tracer = tp.Tracer("timeclock-service")
	return t
}

func newExporter(cfg *Config) sdktrace.SpanExporter {
	switch {
	case cfg.OtelGRPCEndpoint != "":
		exporter, err := otlptrace.New(
			context.Background(),
			otlptracegrpc.NewClient(
				otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint),
				otlptracegrpc.WithInsecure(),
			),
		)
		if err != nil {
			cfg.Logger.Errorf("failed to create otlp grpc exporter: %v", err)
			return nil
		}
		return exporter
	case cfg.OtelHTTPEndpoint != "":
		exporter, err := otlptrace.New(
			context.Background(),
			otlptracehttp.NewClient(
				otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint),
				otlptracehttp.WithInsecure(),
			),
		)
		if err != nil {
			cfg.Logger.Errorf("failed to create otlp http exporter: %v", err)
			return nil
		}
		return exporter
	default:
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			cfg.Logger.Errorf("failed to create stdout exporter: %v", err)
			return nil
		}
		return exporter
	}
}

// NewNoopTracer returns a tracer that records nothing, for tests.
func NewNoopTracer() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer("noop")}
}
