package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fieldstock/backend/internal/domain/catalog"
	"github.com/fieldstock/backend/internal/infrastructure/config"
	"github.com/fieldstock/backend/internal/infrastructure/logger"
	"github.com/fieldstock/backend/internal/infrastructure/migration"
	"github.com/fieldstock/backend/internal/infrastructure/persistence"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
)

const defaultSourceDir = "internal/infrastructure/migration/sql"

func main() {
	var (
		migrationsPath string
		logLevel       string
	)

	flag.StringVar(&migrationsPath, "path", "", "Read migrations from this directory instead of the embedded set")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	_ = godotenv.Load()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	// Commands that do not touch the database
	switch command {
	case "create":
		if len(args) < 2 {
			log.Fatal("Migration name required. Usage: migrate create <name> [description]")
		}
		dir := migrationsPath
		if dir == "" {
			dir = defaultSourceDir
		}
		description := strings.Join(args[2:], " ")
		mf, err := migration.CreateMigration(dir, args[1], description)
		if err != nil {
			log.Fatal("Failed to create migration", zap.Error(err))
		}
		log.Info("Migration created",
			zap.String("version", mf.Version),
			zap.String("up_file", mf.UpPath),
			zap.String("down_file", mf.DownPath),
		)
		return

	case "list":
		fsys := migration.EmbeddedFS()
		if migrationsPath != "" {
			fsys = os.DirFS(migrationsPath)
		}
		names, err := migration.ListMigrations(fsys)
		if err != nil {
			log.Fatal("Failed to list migrations", zap.Error(err))
		}
		log.Info("Available migrations", zap.Int("count", len(names)))
		for _, name := range names {
			fmt.Println("  -", name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if command == "seed" {
		if err := seedProducts(cfg, args[1:], log); err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}
		return
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	var m *migration.Migrator
	if migrationsPath != "" {
		m, err = migration.NewFromPath(db, migrationsPath, log)
	} else {
		m, err = migration.New(db, log)
	}
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}

	case "down":
		if err := m.Down(); err != nil {
			log.Fatal("Migration down failed", zap.Error(err))
		}

	case "step":
		if len(args) < 2 {
			log.Fatal("Step count required. Usage: migrate step <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid step count", zap.String("value", args[1]))
		}
		if err := m.Steps(n); err != nil {
			log.Fatal("Migration step failed", zap.Error(err))
		}

	case "goto":
		if len(args) < 2 {
			log.Fatal("Version required. Usage: migrate goto <version>")
		}
		version, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			log.Fatal("Invalid version number", zap.String("value", args[1]))
		}
		if err := m.GoTo(uint(version)); err != nil {
			log.Fatal("Migration goto failed", zap.Error(err))
		}

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatal("Failed to get version", zap.Error(err))
		}
		if version == 0 {
			log.Info("No migrations applied")
			return
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)

	case "force":
		if len(args) < 2 {
			log.Fatal("Version required. Usage: migrate force <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid version number", zap.String("value", args[1]))
		}
		if err := m.Force(version); err != nil {
			log.Fatal("Force version failed", zap.Error(err))
		}

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

// seedProducts upserts catalog rows given as SKU=Name pairs
func seedProducts(cfg *config.Config, pairs []string, log *zap.Logger) error {
	if len(pairs) == 0 {
		return fmt.Errorf("no products given, usage: migrate seed SKU=Name [SKU=Name ...]")
	}

	products := make([]*catalog.Product, 0, len(pairs))
	for _, pair := range pairs {
		sku, name, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid product %q, want SKU=Name", pair)
		}
		p, err := catalog.NewProduct(sku, name)
		if err != nil {
			return fmt.Errorf("product %q: %w", pair, err)
		}
		products = append(products, p)
	}

	db, err := persistence.Open(gormpostgres.Open(cfg.Database.DSN()), logger.NewGormLogger(log, logger.MapGormLogLevel("warn")))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	repo := persistence.NewGormProductRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, p := range products {
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert %s: %w", p.SKU, err)
		}
		log.Info("Product seeded", zap.String("sku", p.SKU), zap.String("name", p.Name))
	}
	return nil
}

func printUsage() {
	fmt.Println(`FieldStock Database Migration Tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (positive=up, negative=down)
  goto <version>        Migrate to a specific version
  version               Show current migration version
  force <version>       Force set migration version (repairs a dirty schema)
  create <name> [desc]  Create the next numbered migration file pair
  list                  List available migrations
  seed SKU=Name ...     Insert or rename catalog products

Flags:
  -path string          Migrations directory (default: embedded schema; create writes to ` + defaultSourceDir + `)
  -log-level string     Log level: debug, info, warn, error (default: info)

Environment Variables:
  FIELDSTOCK_DATABASE_HOST, FIELDSTOCK_DATABASE_PORT, FIELDSTOCK_DATABASE_USER,
  FIELDSTOCK_DATABASE_PASSWORD, FIELDSTOCK_DATABASE_DBNAME, FIELDSTOCK_DATABASE_SSLMODE

Examples:
  migrate up
  migrate step -1
  migrate create add_rider_index "Index rider lookups"
  migrate seed SKU-1="Bottled Water"`)
}
