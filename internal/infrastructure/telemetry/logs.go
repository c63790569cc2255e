package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldstock/backend/internal/infrastructure/config"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerProvider owns the SDK log provider used by the zap bridge
type LoggerProvider struct {
	provider *sdklog.LoggerProvider
	logger   *zap.Logger
}

// NewLoggerProvider creates an OTLP/gRPC log provider when telemetry and
// log export are both enabled
func NewLoggerProvider(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*LoggerProvider, error) {
	lp := &LoggerProvider{logger: logger}

	if !cfg.Enabled || !cfg.LogsEnabled {
		return lp, nil
	}

	exporterOpts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP logs exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	lp.provider = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(lp.provider)

	logger.Info("OpenTelemetry LoggerProvider initialized", zap.String("collector_endpoint", cfg.CollectorEndpoint))
	return lp, nil
}

// IsEnabled returns whether logs are exported
func (lp *LoggerProvider) IsEnabled() bool {
	return lp.provider != nil
}

// Bridge returns base teed into the OTLP log pipeline at base's level.
// With export disabled base is returned unchanged.
func (lp *LoggerProvider) Bridge(base *zap.Logger, name string) *zap.Logger {
	if lp.provider == nil {
		return base
	}
	otelCore := &levelFilterCore{
		Core:    otelzap.NewCore(name, otelzap.WithLoggerProvider(lp.provider)),
		enabler: base.Core(),
	}
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, otelCore)
	}))
}

// Shutdown flushes pending log records
func (lp *LoggerProvider) Shutdown(ctx context.Context) error {
	if lp.provider == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := lp.provider.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown logger provider: %w", err)
	}
	return nil
}

// levelFilterCore applies another core's level to the otelzap core, which has none of its own
type levelFilterCore struct {
	zapcore.Core
	enabler zapcore.LevelEnabler
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return c.enabler.Enabled(lvl) && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(entry.Level) {
		return ce
	}
	return c.Core.Check(entry, ce)
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), enabler: c.enabler}
}
