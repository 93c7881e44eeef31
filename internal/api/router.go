package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ucyo/www-next-dashboard/internal/api/handler"
	"github.com/ucyo/www-next-dashboard/internal/api/middleware"
	"github.com/ucyo/www-next-dashboard/internal/core/service"
	"github.com/ucyo/www-next-dashboard/internal/infrastructure/config"
	"github.com/ucyo/www-next-dashboard/internal/infrastructure/db/postgres"
	redisdb "github.com/ucyo/www-next-dashboard/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Dependencies ---
	invoiceRepo := postgres.NewInvoiceRepository(db)
	userRepo := postgres.NewUserRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	pageCache := redisdb.NewPageCache(rdb, cfg.Redis.PageTTL)

	invoiceService := service.NewInvoiceService(invoiceRepo, pageCache, log)
	registrationService := service.NewRegistrationService(userRepo, log)
	provider := service.NewCredentialProvider(userRepo, cfg.JWTSecret, cfg.SessionTTL)
	sessionService := service.NewSessionService(provider, log)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	authHandler := handler.NewAuthHandler(sessionService, registrationService)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)

	// --- Dashboard routes (session required) ---
	dashboard := e.Group("/dashboard", middleware.Auth(cfg.JWTSecret))
	dashboard.GET("/invoices", invoiceHandler.List)
	dashboard.POST("/invoices", invoiceHandler.Create)
	dashboard.PUT("/invoices/:id", invoiceHandler.Update)
	dashboard.DELETE("/invoices/:id", invoiceHandler.Delete)
	dashboard.GET("/customers", customerHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
