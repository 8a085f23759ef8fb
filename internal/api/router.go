package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NSVEGUR/bookmarks-api/internal/api/handler"
	"github.com/NSVEGUR/bookmarks-api/internal/api/middleware"
	"github.com/NSVEGUR/bookmarks-api/internal/core/service"
	mongodb "github.com/NSVEGUR/bookmarks-api/internal/infrastructure/db/mongo"
	redisdb "github.com/NSVEGUR/bookmarks-api/internal/infrastructure/db/redis"
)

// Config carries the runtime settings the router needs to wire handlers.
type Config struct {
	JWTSecret       string
	TokenTTL        time.Duration
	LoginRateLimit  int64
	LoginRateWindow time.Duration
	Logger          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Binder = handler.NewBinder()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookmarks"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookmarkRepo := mongodb.NewBookmarkRepository(db)
	userCache := redisdb.NewUserCache(rdb, userRepo)
	loginLimiter := redisdb.NewLoginLimiter(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, cfg.Logger)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService, loginLimiter)
	userHandler := handler.NewUserHandler(userService, userCache)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, userCache)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("/me", userHandler.Me)
	users.PATCH("", userHandler.Edit)

	// --- Bookmark routes ---
	bookmarks := e.Group("/bookmarks", authMiddleware)
	bookmarks.POST("", bookmarkHandler.Create)
	bookmarks.GET("", bookmarkHandler.List)
	bookmarks.GET("/:id", bookmarkHandler.Get)
	bookmarks.PATCH("/:id", bookmarkHandler.Update)
	bookmarks.DELETE("/:id", bookmarkHandler.Delete)

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
