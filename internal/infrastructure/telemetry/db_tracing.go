package telemetry

import (
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig controls the otelgorm plugin
type DBTracingConfig struct {
	Enabled            bool
	DBName             string
	LogFullSQL         bool // keep bound variables in db.statement
	SlowQueryThreshold time.Duration
}

// RegisterDBTracing installs otelgorm on db so every statement becomes a
// child span of the request span. Statements slower than the threshold get
// a db.slow_query attribute on the active span.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	threshold := cfg.SlowQueryThreshold
	if threshold <= 0 {
		threshold = 200 * time.Millisecond
	}
	err := registerTimedCallbacks(db, "otel_slow_query", func(tx *gorm.DB, operation string, elapsed time.Duration) {
		if elapsed < threshold {
			return
		}
		span := trace.SpanFromContext(tx.Statement.Context)
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.duration_ms", elapsed.Milliseconds()),
		)
		logger.Warn("slow query",
			zap.String("operation", operation),
			zap.String("table", tx.Statement.Table),
			zap.Duration("elapsed", elapsed),
		)
	})
	if err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", threshold),
	)
	return nil
}
