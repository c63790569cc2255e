package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/infrastructure/auth"
	"github.com/fieldstock/backend/internal/infrastructure/cache"
	"github.com/fieldstock/backend/internal/infrastructure/config"
	"github.com/fieldstock/backend/internal/infrastructure/event"
	"github.com/fieldstock/backend/internal/infrastructure/logger"
	"github.com/fieldstock/backend/internal/infrastructure/persistence"
	"github.com/fieldstock/backend/internal/infrastructure/telemetry"
	"github.com/fieldstock/backend/internal/interfaces/http/middleware"
	"github.com/fieldstock/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

//go:generate swag init --v3.1 -d ../.. -g cmd/server/main.go -o ../../docs

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Fieldstock API
//	@version		1.0
//	@description	Warehouse and rider stock ledger: adjustments, distributions, returns and low-stock monitoring.

//	@contact.name	API Support

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	baseLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(baseLog)
	}()

	ctx := context.Background()

	// Telemetry: traces, metrics and logs over OTLP
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	log := loggerProvider.Bridge(baseLog, cfg.Telemetry.ServiceName)

	log.Info("Starting FieldStock backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Database with the zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithContentionClassifier(persistence.IsContentionError),
	)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		DBName:     cfg.Database.DBName,
		LogFullSQL: cfg.Telemetry.DBLogFullSQL,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	meter := meterProvider.Meter(telemetry.TracerName)
	dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, meter, log)
	if err != nil {
		log.Fatal("Failed to register database metrics", zap.Error(err))
	}
	stockMetrics, err := telemetry.RegisterStockMetrics(meter, telemetry.NewGormStockLevelsProvider(db.DB), 0, log)
	if err != nil {
		log.Fatal("Failed to register stock metrics", zap.Error(err))
	}
	promMetrics := telemetry.NewMetrics(telemetry.DefaultMetricsConfig())

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	stockRepo := persistence.NewGormWarehouseStockRepository(db.DB)
	riderRepo := persistence.NewGormRiderInventoryRepository(db.DB)
	distributionRepo := persistence.NewGormDistributionRepository(db.DB)
	returnRepo := persistence.NewGormReturnRequestRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)
	access := auth.NewContextAccessControl()

	// Application services
	ledger := inventoryapp.NewLedgerService(txScope, productRepo, access, log,
		inventoryapp.WithRetryConfig(inventoryapp.RetryConfig{
			MaxRetries:      cfg.Ledger.MaxRetries,
			InitialInterval: cfg.Ledger.RetryInitialInterval,
			MaxInterval:     cfg.Ledger.RetryMaxInterval,
		}),
		inventoryapp.WithDefaultMinStock(cfg.Ledger.DefaultMinStock),
		inventoryapp.WithLedgerMetrics(promMetrics),
	)
	services := router.Services{
		Ledger:        ledger,
		Distributions: inventoryapp.NewDistributionService(ledger, access, log),
		Returns:       inventoryapp.NewReturnService(ledger, access, log),
		Monitor:       inventoryapp.NewLowStockMonitor(stockRepo, productRepo),
		Queries:       inventoryapp.NewQueryService(stockRepo, riderRepo, distributionRepo, returnRepo, productRepo, access),
	}

	// Event bus for committed ledger events
	eventBus := event.NewInMemoryEventBus(log)
	alertHandler := inventoryapp.NewLowStockAlertHandler(log).WithMetrics(promMetrics)
	eventBus.Subscribe(alertHandler, alertHandler.EventTypes()...)
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	ledger.SetEventPublisher(eventBus)

	// Idempotency store: redis behind a circuit breaker, or in-memory
	deps := router.Dependencies{
		Logger:         log,
		HTTP:           cfg.HTTP,
		Swagger:        cfg.Swagger,
		ServiceName:    cfg.Telemetry.ServiceName,
		Version:        version,
		TracingEnabled: cfg.Telemetry.Enabled,
		DB:             db,
		JWT:            auth.NewJWTService(cfg.JWT),
		Metrics:        promMetrics,
		IdempotencyTTL: cfg.Idempotency.TTL,
		Services:       services,
	}
	if cfg.Idempotency.Enabled {
		store, err := cache.NewIdempotencyStoreFactory(cfg.Idempotency, cfg.Redis, cache.WithLogger(log)).CreateStore(ctx)
		if err != nil {
			log.Fatal("Failed to create idempotency store", zap.Error(err))
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Warn("Error closing idempotency store", zap.Error(err))
			}
		}()
		deps.IdempotencyStore = store
	}

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := router.New(deps)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Warn("Error stopping event bus", zap.Error(err))
	}
	if err := stockMetrics.Stop(); err != nil {
		log.Warn("Error unregistering stock metrics", zap.Error(err))
	}
	if err := dbMetrics.Stop(); err != nil {
		log.Warn("Error unregistering database metrics", zap.Error(err))
	}
	for name, shutdown := range map[string]func(context.Context) error{
		"tracer": tracerProvider.Shutdown,
		"meter":  meterProvider.Shutdown,
		"logger": loggerProvider.Shutdown,
	} {
		if err := shutdown(shutdownCtx); err != nil {
			log.Warn("Telemetry shutdown failed", zap.String("provider", name), zap.Error(err))
		}
	}

	log.Info("Server exited gracefully")
}
