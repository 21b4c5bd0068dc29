package main

import (
	"context"
	"net/http"
	"time"

	_ "github.com/cyngu/integration-continue-exo-node/docs" // swagger docs

	"github.com/cyngu/integration-continue-exo-node/internal/api"
	"github.com/cyngu/integration-continue-exo-node/internal/core/service"
	"github.com/cyngu/integration-continue-exo-node/internal/infrastructure/config"
	mongodb "github.com/cyngu/integration-continue-exo-node/internal/infrastructure/db/mongo"
	redisdb "github.com/cyngu/integration-continue-exo-node/internal/infrastructure/db/redis"
	"github.com/cyngu/integration-continue-exo-node/pkg/logger"
)

const startupTimeout = 15 * time.Second

// @title User Management API
// @version 1.0
// @description User accounts with signup validation, JWT authentication and role-gated deletion.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// The unique email index is the authoritative duplicate guard; make sure
	// it exists before any signup can race.
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	roleService := service.NewRoleService(mongodb.NewRoleRepository(db), redisdb.NewRoleCache(rdb), log)
	if err := roleService.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	e := api.NewRouter(db, rdb, tokens, log)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
