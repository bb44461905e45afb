package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storelane/commerce-api/internal/api/handler"
	"github.com/storelane/commerce-api/internal/api/middleware"
	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
	"github.com/storelane/commerce-api/internal/core/service"
	"github.com/storelane/commerce-api/internal/infrastructure/config"
	mongodb "github.com/storelane/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storelane/commerce-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/storelane/commerce-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redislib.Client, cfg *config.Config, audit ports.AuditPublisher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	tokenService := service.NewTokenService(userRepo, cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authService := service.NewAuthService(userRepo, tokenService, audit, cfg.Auth.BcryptCost, log)
	userService := service.NewUserService(userRepo, productRepo, audit, cfg.Auth.BcryptCost, log)
	productService := service.NewProductService(productRepo, log)

	var limiter handler.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)
	}

	authHandler := handler.NewAuthHandler(authService, limiter)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	authGuard := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(string(domain.RoleAdmin))

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout, authGuard)

	// --- Self-service user routes ---
	users := e.Group("/api/users", authGuard)
	users.GET("/profile", userHandler.GetProfile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.POST("/change-password", userHandler.ChangePassword)
	users.DELETE("/delete-account", userHandler.DeleteAccount)

	// --- Admin user routes ---
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get, adminOnly)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)
	users.PUT("/:id/role", userHandler.ChangeRole, adminOnly)

	// --- Product routes ---
	products := e.Group("/api/products", authGuard)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, adminOnly)
	products.PUT("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
