package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fieldstock/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// startupPingWindow bounds how long NewDatabase waits for PostgreSQL to accept connections
const startupPingWindow = 30 * time.Second

// Database owns the process-wide GORM handle
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the PostgreSQL pool described by cfg and waits for it to answer a ping.
// A nil gormLogger silences GORM's own logging.
func NewDatabase(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	db, err := Open(postgres.Open(cfg.DSN()), gormLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	d := &Database{DB: db}

	pool, err := d.pool()
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	pool.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = startupPingWindow
	if err := backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return pool.PingContext(ctx)
	}, policy); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return d, nil
}

// Open opens a GORM handle on any dialector with the settings the repositories rely on:
// UTC timestamps, translated driver errors and no implicit per-statement transactions.
func Open(dialector gorm.Dialector, gormLogger logger.Interface) (*gorm.DB, error) {
	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

func (d *Database) pool() (*sql.DB, error) {
	pool, err := d.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return pool, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping(ctx context.Context) error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	return pool.PingContext(ctx)
}
