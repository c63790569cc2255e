package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBMetrics records query counts and latency and observes connection pool state
type DBMetrics struct {
	queryTotal    metric.Int64Counter
	queryErrors   metric.Int64Counter
	queryDuration metric.Float64Histogram
	registration  metric.Registration
}

// RegisterDBMetrics instruments db with the given meter. The pool gauges are
// observed on every collection cycle of the meter's reader.
func RegisterDBMetrics(db *gorm.DB, meter metric.Meter, logger *zap.Logger) (*DBMetrics, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	m := &DBMetrics{}
	if m.queryTotal, err = meter.Int64Counter("db_query_total",
		metric.WithDescription("Database statements by operation"),
		metric.WithUnit("{query}"),
	); err != nil {
		return nil, err
	}
	if m.queryErrors, err = meter.Int64Counter("db_query_errors_total",
		metric.WithDescription("Database statements that returned an error, excluding not-found"),
		metric.WithUnit("{query}"),
	); err != nil {
		return nil, err
	}
	if m.queryDuration, err = meter.Float64Histogram("db_query_duration_seconds",
		metric.WithDescription("Database statement latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DBDurationBuckets...),
	); err != nil {
		return nil, err
	}

	if err := m.observePool(meter, sqlDB); err != nil {
		return nil, err
	}

	err = registerTimedCallbacks(db, "db_metrics", func(tx *gorm.DB, operation string, elapsed time.Duration) {
		m.record(tx.Statement.Context, operation, tx.Statement.Table, elapsed, tx.Error)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Database metrics registered")
	return m, nil
}

func (m *DBMetrics) observePool(meter metric.Meter, sqlDB *sql.DB) error {
	conns, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Connections in the pool by state"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return err
	}
	maxConns, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Maximum open connections"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return err
	}
	waits, err := meter.Int64ObservableCounter("db_pool_wait_total",
		metric.WithDescription("Connections waited for"),
		metric.WithUnit("{wait}"),
	)
	if err != nil {
		return err
	}

	m.registration, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sqlDB.Stats()
		o.ObserveInt64(conns, int64(stats.Idle), metric.WithAttributes(AttrDBState.String("idle")))
		o.ObserveInt64(conns, int64(stats.InUse), metric.WithAttributes(AttrDBState.String("in_use")))
		o.ObserveInt64(conns, int64(stats.OpenConnections), metric.WithAttributes(AttrDBState.String("open")))
		o.ObserveInt64(maxConns, int64(stats.MaxOpenConnections))
		o.ObserveInt64(waits, stats.WaitCount)
		return nil
	}, conns, maxConns, waits)
	return err
}

func (m *DBMetrics) record(ctx context.Context, operation, table string, elapsed time.Duration, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if table == "" {
		table = "unknown"
	}
	attrs := metric.WithAttributes(AttrDBOperation.String(operation), AttrDBTable.String(table))
	m.queryTotal.Add(ctx, 1, attrs)
	m.queryDuration.Record(ctx, elapsed.Seconds(), attrs)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		m.queryErrors.Add(ctx, 1, attrs)
	}
}

// Stop unregisters the pool observer
func (m *DBMetrics) Stop() error {
	if m.registration == nil {
		return nil
	}
	return m.registration.Unregister()
}
