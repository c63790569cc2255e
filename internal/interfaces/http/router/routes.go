package router

import (
	"time"

	inventoryapp "github.com/fieldstock/backend/internal/application/inventory"
	"github.com/fieldstock/backend/internal/domain/shared"
	"github.com/fieldstock/backend/internal/infrastructure/auth"
	"github.com/fieldstock/backend/internal/infrastructure/config"
	"github.com/fieldstock/backend/internal/infrastructure/logger"
	"github.com/fieldstock/backend/internal/infrastructure/telemetry"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/fieldstock/backend/internal/interfaces/http/handler"
	"github.com/fieldstock/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/fieldstock/backend/docs"
)

// Services are the application services exposed over HTTP
type Services struct {
	Ledger        *inventoryapp.LedgerService
	Distributions *inventoryapp.DistributionService
	Returns       *inventoryapp.ReturnService
	Monitor       *inventoryapp.LowStockMonitor
	Queries       *inventoryapp.QueryService
}

// Dependencies holds everything the HTTP layer needs
type Dependencies struct {
	Logger           *zap.Logger
	HTTP             config.HTTPConfig
	Swagger          config.SwaggerConfig
	ServiceName      string
	Version          string
	TracingEnabled   bool
	DB               handler.Pinger
	JWT              *auth.JWTService
	Metrics          *telemetry.Metrics
	IdempotencyStore shared.IdempotencyStore
	IdempotencyTTL   time.Duration
	Services         Services
}

const defaultMaxBodySize = 1 << 20

// unloggedPaths are health and scrape endpoints kept out of the request log
var unloggedPaths = []string{"/health", "/ready", "/metrics"}

// New builds the gin engine with the global middleware chain and every route
func New(deps Dependencies) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	maxBody := deps.HTTP.MaxBodySize
	if maxBody <= 0 {
		maxBody = defaultMaxBodySize
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Tracing(middleware.TracingConfig{ServiceName: deps.ServiceName, Enabled: deps.TracingEnabled}),
		middleware.SpanEnricher(),
		logger.Recovery(log),
		logger.GinMiddleware(log, unloggedPaths...),
		middleware.HTTPMetrics(deps.Metrics),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig(deps.HTTP)),
		middleware.BodyLimit(maxBody),
	)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(dto.GetHTTPStatus(dto.ErrCodeRouteNotFound),
			dto.NewErrorResponse(dto.ErrCodeRouteNotFound, "Route not found", middleware.GetRequestID(c)))
	})

	health := handler.NewHealthHandler(deps.DB, deps.Version)
	engine.GET("/health", health.Health)
	engine.GET("/ready", health.Ready)
	if deps.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	jwt := middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{JWTService: deps.JWT, Logger: log})

	if deps.Swagger.Enabled {
		access := middleware.DocsAccessConfig{AllowedIPs: deps.Swagger.AllowedIPs}
		if deps.Swagger.RequireAuth {
			access.Auth = jwt
		}
		engine.GET("/swagger/*any", middleware.DocsAccess(access), ginSwagger.WrapHandler(swaggerFiles.Handler))
		log.Info("API documentation enabled",
			zap.Bool("require_auth", deps.Swagger.RequireAuth),
			zap.Strings("allowed_ips", deps.Swagger.AllowedIPs),
		)
	}

	r := NewRouter(engine, WithAPIVersion("v1"), WithLogger(log)).
		Use(
			jwt,
			middleware.Idempotency(middleware.IdempotencyConfig{
				Store:  deps.IdempotencyStore,
				TTL:    deps.IdempotencyTTL,
				Logger: log,
			}),
		).
		Register(apiGroups(deps.Services)...)
	r.Setup()

	return engine
}

func apiGroups(s Services) []RouteRegistrar {
	products := handler.NewProductHandler(s.Queries)
	warehouse := handler.NewWarehouseHandler(s.Ledger, s.Queries, s.Monitor)
	distributions := handler.NewDistributionHandler(s.Distributions, s.Queries)
	returns := handler.NewReturnHandler(s.Returns, s.Queries)
	riders := handler.NewRiderHandler(s.Queries)

	return []RouteRegistrar{
		NewDomainGroup("catalog", "/products").
			GET("", products.List),
		NewDomainGroup("warehouse", "/warehouse").
			GET("/stock", warehouse.ListStock).
			GET("/stock/:product_id", warehouse.GetStock).
			PUT("/stock/:product_id", warehouse.AdjustStock).
			GET("/low-stock", warehouse.ListLowStock),
		NewDomainGroup("distribution", "/distributions").
			POST("", distributions.Create).
			GET("", distributions.List),
		NewDomainGroup("returns", "/returns").
			POST("", returns.Create).
			GET("/pending", returns.ListPending).
			GET("/reasons", returns.Reasons).
			POST("/:id/approve", returns.Approve).
			POST("/:id/reject", returns.Reject),
		NewDomainGroup("riders", "/riders").
			GET("/:rider_id/inventory", riders.Inventory).
			GET("/:rider_id/returns", riders.Returns),
	}
}

func corsConfig(cfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.CORSAllowOrigins
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	return cors
}
