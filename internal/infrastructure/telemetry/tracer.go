package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldstock/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TracerProvider owns the SDK tracer provider and its exporter
type TracerProvider struct {
	provider *sdktrace.TracerProvider
	logger   *zap.Logger
	config   config.TelemetryConfig
}

// NewTracerProvider installs an OTLP/gRPC tracer provider as the global one.
// When telemetry is disabled the global no-op provider is left in place.
func NewTracerProvider(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*TracerProvider, error) {
	tp := &TracerProvider{logger: logger, config: cfg}

	if !cfg.Enabled {
		logger.Info("Telemetry disabled, using no-op tracer provider")
		return tp, nil
	}

	exporterOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	tp.provider = newSDKTracerProvider(sdktrace.NewBatchSpanProcessor(exporter), cfg.SamplingRatio, sdktrace.WithResource(res))
	otel.SetTracerProvider(tp.provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("OpenTelemetry TracerProvider initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Float64("sampling_ratio", cfg.SamplingRatio),
		zap.String("service_name", cfg.ServiceName),
	)
	return tp, nil
}

func newSDKTracerProvider(processor sdktrace.SpanProcessor, ratio float64, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	opts = append(opts,
		sdktrace.WithSpanProcessor(processor),
		sdktrace.WithSampler(sdktrace.ParentBased(samplerFor(ratio))),
	)
	return sdktrace.NewTracerProvider(opts...)
}

func samplerFor(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.AlwaysSample()
	case ratio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(ratio)
	}
}

// Shutdown flushes pending spans
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp.provider == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := tp.provider.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}
	tp.logger.Info("OpenTelemetry TracerProvider shutdown complete")
	return nil
}

// Tracer returns a named tracer
func (tp *TracerProvider) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	if tp.provider == nil {
		return otel.GetTracerProvider().Tracer(name, opts...)
	}
	return tp.provider.Tracer(name, opts...)
}

// IsEnabled returns whether spans are exported
func (tp *TracerProvider) IsEnabled() bool {
	return tp.provider != nil
}
