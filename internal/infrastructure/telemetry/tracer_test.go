package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldstock/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDisabledProviders(t *testing.T) {
	ctx := context.Background()
	cfg := config.TelemetryConfig{Enabled: false, ServiceName: "fieldstock-test"}

	tp, err := NewTracerProvider(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("test"))
	assert.NoError(t, tp.Shutdown(ctx))

	mp, err := NewMeterProvider(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("test"))
	assert.NoError(t, mp.Shutdown(ctx))

	lp, err := NewLoggerProvider(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, lp.IsEnabled())
	assert.NoError(t, lp.Shutdown(ctx))
}

func TestLoggerProvider_RequiresLogsEnabled(t *testing.T) {
	lp, err := NewLoggerProvider(context.Background(), config.TelemetryConfig{
		Enabled:     true,
		LogsEnabled: false,
	}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, lp.IsEnabled())

	base := zap.NewNop()
	assert.Same(t, base, lp.Bridge(base, "fieldstock"))
}

func TestLevelFilterCore(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	core := &levelFilterCore{Core: inner, enabler: zapcore.InfoLevel}

	log := zap.New(core)
	log.Debug("dropped")
	log.Info("kept")
	log.With(zap.String("k", "v")).Debug("dropped too")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), samplerFor(1).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), samplerFor(2).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), samplerFor(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), samplerFor(0.25).Description())
}

func TestNewSDKTracerProvider_Sampling(t *testing.T) {
	t.Run("ratio one records every span", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		tp := newSDKTracerProvider(recorder, 1)
		defer func() { _ = tp.Shutdown(context.Background()) }()

		_, span := tp.Tracer("test").Start(context.Background(), "op")
		span.End()
		assert.Len(t, recorder.Ended(), 1)
	})

	t.Run("ratio zero records nothing", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		tp := newSDKTracerProvider(recorder, 0)
		defer func() { _ = tp.Shutdown(context.Background()) }()

		_, span := tp.Tracer("test").Start(context.Background(), "op")
		span.End()
		assert.Empty(t, recorder.Ended())
	})
}

func TestStartSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := newSDKTracerProvider(recorder, 1)
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	_, span := StartSpan(context.Background(), "ledger", "adjust", attribute.String("product.id", "p1"))
	EndSpan(span, nil)

	_, failed := StartSpan(context.Background(), "ledger", "transfer_to_rider")
	EndSpan(failed, errors.New("insufficient stock"))

	ended := recorder.Ended()
	require.Len(t, ended, 2)

	assert.Equal(t, "ledger.adjust", ended[0].Name())
	assert.Equal(t, codes.Ok, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.String("product.id", "p1"))

	assert.Equal(t, "ledger.transfer_to_rider", ended[1].Name())
	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, "insufficient stock", ended[1].Status().Description)
	require.Len(t, ended[1].Events(), 1)
	assert.Equal(t, "exception", ended[1].Events()[0].Name)
}
