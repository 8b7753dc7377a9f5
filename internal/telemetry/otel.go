package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/blaisecz/better-rest/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Shutdown flushes and stops the tracer provider.
type Shutdown func(context.Context) error

// InitTracer exports spans to the Langfuse OTLP endpoint.
// Without Langfuse credentials the global no-op provider is kept.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string) (Shutdown, error) {
	if cfg.LangfuseBaseURL == "" || cfg.LangfusePublicKey == "" || cfg.LangfuseSecretKey == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(OTLPEndpoint(cfg.LangfuseBaseURL)),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": BasicAuth(cfg.LangfusePublicKey, cfg.LangfuseSecretKey),
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
			attribute.String("bedtime.model_backend", cfg.ModelBackend),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// OTLPEndpoint is the Langfuse trace ingestion URL for a base URL.
func OTLPEndpoint(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/api/public/otel/v1/traces"
}

// BasicAuth builds the Authorization header from Langfuse public/secret keys.
func BasicAuth(publicKey, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(publicKey+":"+secretKey))
}
