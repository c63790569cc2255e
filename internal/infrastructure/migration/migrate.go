package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// SourceDir is the directory of the embedded schema inside Files
const SourceDir = "sql"

// Files holds the schema migrations compiled into the binary
//
//go:embed sql/*.sql
var Files embed.FS

// Migrator handles database migrations using golang-migrate
type Migrator struct {
	migrate *migrate.Migrate
	logger  *zap.Logger
}

// New creates a Migrator over an open postgres connection using the embedded schema
func New(db *sql.DB, logger *zap.Logger) (*Migrator, error) {
	src, err := EmbeddedSource()
	if err != nil {
		return nil, err
	}
	return newWithSource(db, "iofs", src, logger)
}

// NewFromPath creates a Migrator that reads migrations from a directory on disk
func NewFromPath(db *sql.DB, migrationsPath string, logger *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return &Migrator{migrate: m, logger: logger}, nil
}

// EmbeddedSource returns a golang-migrate source driver over Files
func EmbeddedSource() (source.Driver, error) {
	src, err := iofs.New(Files, SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	return src, nil
}

// EmbeddedFS returns the embedded migrations rooted at SourceDir
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(Files, SourceDir)
	if err != nil {
		// SourceDir is a compile-time constant matched by the embed pattern
		panic(err)
	}
	return sub
}

func newWithSource(db *sql.DB, sourceName string, src source.Driver, logger *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance(sourceName, src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return &Migrator{migrate: m, logger: logger}, nil
}

// Up runs all pending migrations
func (m *Migrator) Up() error {
	m.logger.Info("Running migrations up")

	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	m.logger.Info("Migrations completed",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// Down rolls back all migrations
func (m *Migrator) Down() error {
	m.logger.Info("Running migrations down")

	err := m.migrate.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}

	m.logger.Info("All migrations rolled back")
	return nil
}

// Steps applies n migrations (positive = up, negative = down)
func (m *Migrator) Steps(n int) error {
	m.logger.Info("Running migration steps", zap.Int("steps", n))

	err := m.migrate.Steps(n)
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration steps failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}

	m.logger.Info("Migration steps completed",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// GoTo migrates to a specific version
func (m *Migrator) GoTo(version uint) error {
	m.logger.Info("Migrating to version", zap.Uint("target_version", version))

	err := m.migrate.Migrate(version)
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("Already at target version")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration to version %d failed: %w", version, err)
	}

	m.logger.Info("Migration to version completed", zap.Uint("version", version))
	return nil
}

// Version returns the current migration version, 0 when nothing is applied
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

// Force sets the migration version without running migrations.
// Only for repairing a dirty schema.
func (m *Migrator) Force(version int) error {
	m.logger.Warn("Forcing migration version", zap.Int("version", version))

	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}

	m.logger.Info("Migration version forced", zap.Int("version", version))
	return nil
}

// Close closes the migrator and releases resources
func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return fmt.Errorf("failed to close source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("failed to close database: %w", dbErr)
	}
	return nil
}
