package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devio/fornecedores-api/internal/api/handler"
	"github.com/devio/fornecedores-api/internal/api/middleware"
	"github.com/devio/fornecedores-api/internal/core/domain"
	"github.com/devio/fornecedores-api/internal/core/ports"
	"github.com/devio/fornecedores-api/internal/core/service"
	"github.com/devio/fornecedores-api/internal/infrastructure/config"
	mongodb "github.com/devio/fornecedores-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devio/fornecedores-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("fornecedores"))

	// --- Dependencies ---
	tokenSettings := ports.TokenSettings{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL,
	}
	lockoutPolicy := service.LockoutPolicy{
		MaxAttempts:    cfg.Lockout.MaxAttempts,
		Window:         cfg.Lockout.Window,
		OnFailure:      cfg.Lockout.OnFailure,
		ResetOnSuccess: cfg.Lockout.ResetOnSuccess,
	}

	authRepo := mongodb.NewAuthRepository(db)
	supplierRepo := mongodb.NewSupplierRepository(db)
	lockoutCache := redisdb.NewLockoutCache(rdb)

	authService := service.NewAuthService(authRepo, tokenSettings, lockoutPolicy, lockoutCache, log)
	supplierService := service.NewSupplierService(supplierRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	supplierHandler := handler.NewSupplierHandler(supplierService)

	authenticated := middleware.Auth(tokenSettings)

	// --- Auth routes (public) ---
	e.POST("/registro", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Supplier routes ---
	suppliers := e.Group("/fornecedor")
	suppliers.GET("", supplierHandler.List)
	suppliers.GET("/:id", supplierHandler.Get, authenticated)
	suppliers.POST("", supplierHandler.Create, authenticated)
	suppliers.PUT("/:id", supplierHandler.Update, authenticated)
	suppliers.DELETE("/:id", supplierHandler.Delete, authenticated, middleware.RequireClaim(domain.ClaimDeleteSupplier))

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
