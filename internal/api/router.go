package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/shoplane/catalog-service/docs"
	"github.com/shoplane/catalog-service/internal/api/handler"
	"github.com/shoplane/catalog-service/internal/api/middleware"
	"github.com/shoplane/catalog-service/internal/core/service"
	"github.com/shoplane/catalog-service/internal/infrastructure/config"
	mongostore "github.com/shoplane/catalog-service/internal/infrastructure/db/mongo"
	redisstore "github.com/shoplane/catalog-service/internal/infrastructure/db/redis"
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
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	authRepo := mongostore.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := mongostore.NewProductRepository(db)
	productService := service.NewProductService(productRepo, log)
	productHandler := handler.NewProductHandler(productService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	authLimit := middleware.RateLimit("auth", redisstore.NewRateLimiter(rdb, cfg.AuthRateLimit), log)

	// --- API routes ---
	api := e.Group("/api")

	api.POST("/auth/register", authHandler.Register, authLimit)
	api.POST("/auth/login", authHandler.Login, authLimit)
	api.GET("/auth/me", authHandler.Me, authMiddleware)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.POST("/products", productHandler.Create, authMiddleware)
	api.PUT("/products/:id", productHandler.Update, authMiddleware)
	api.DELETE("/products/:id", productHandler.Delete, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
