package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldstock/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// Attribute keys shared by instruments
var (
	AttrDBOperation = attribute.Key("db.operation")
	AttrDBTable     = attribute.Key("db.table")
	AttrDBState     = attribute.Key("db.pool.state")
	AttrStockLevel  = attribute.Key("stock.level")
)

// DBDurationBuckets are bucket boundaries for database query duration (seconds)
var DBDurationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// MeterProvider owns the SDK meter provider pushing to the collector
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	logger   *zap.Logger
}

// NewMeterProvider installs an OTLP/gRPC meter provider with a periodic reader.
// When telemetry is disabled, meters come from the global no-op provider.
func NewMeterProvider(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{logger: logger}

	if !cfg.Enabled {
		logger.Info("Metrics export disabled, using no-op meter provider")
		return mp, nil
	}

	exporterOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	interval := cfg.MetricsInterval
	if interval <= 0 {
		interval = time.Minute
	}

	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp.provider)

	logger.Info("OpenTelemetry MeterProvider initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", interval),
	)
	return mp, nil
}

// Meter returns a named meter
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.provider.Meter(name, opts...)
}

// IsEnabled returns whether metrics are exported
func (mp *MeterProvider) IsEnabled() bool {
	return mp.provider != nil
}

// Shutdown flushes pending metrics
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := mp.provider.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	mp.logger.Info("OpenTelemetry MeterProvider shutdown complete")
	return nil
}
