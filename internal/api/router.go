package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cyngu/integration-continue-exo-node/internal/api/handler"
	"github.com/cyngu/integration-continue-exo-node/internal/api/middleware"
	"github.com/cyngu/integration-continue-exo-node/internal/core/ports"
	"github.com/cyngu/integration-continue-exo-node/internal/core/service"
	mongodb "github.com/cyngu/integration-continue-exo-node/internal/infrastructure/db/mongo"
	redisdb "github.com/cyngu/integration-continue-exo-node/internal/infrastructure/db/redis"
	"github.com/cyngu/integration-continue-exo-node/internal/pkg/hasher"
)

// NewRouter wires repositories, services and handlers by explicit reference
// and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens ports.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userapi"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	pwdHasher := hasher.NewBcrypt()
	roleRepo := mongodb.NewRoleRepository(db)
	roleCache := redisdb.NewRoleCache(rdb)
	roleService := service.NewRoleService(roleRepo, roleCache, log)
	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, roleService, pwdHasher, tokens, log)
	authService := service.NewAuthService(userService, pwdHasher, tokens, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authGuard := middleware.Auth(tokens)

	// --- Auth routes (open) ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- User routes (bearer token required) ---
	users := e.Group("/users", authGuard)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:email", userHandler.GetByEmail)
	users.DELETE("/:id", userHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api-docs/*", echoswagger.WrapHandler)

	return e
}
