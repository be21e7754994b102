package main

import (
	"context"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/grocery-tracker/grocery-tracker/internal/auth"
	"github.com/grocery-tracker/grocery-tracker/internal/config"
	"github.com/grocery-tracker/grocery-tracker/internal/db"
	router "github.com/grocery-tracker/grocery-tracker/internal/http"
	"github.com/grocery-tracker/grocery-tracker/internal/http/handlers"
	"github.com/grocery-tracker/grocery-tracker/internal/http/ratelimit"
	"github.com/grocery-tracker/grocery-tracker/internal/obs"
	"github.com/grocery-tracker/grocery-tracker/internal/redissvc"
	"github.com/grocery-tracker/grocery-tracker/internal/repo"
)

// @title Grocery Inventory Tracker API
// @version 1.0
// @description Multi-tenant REST API for managing grocery products and recording sales.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	obs.InitLogger()
	logger := obs.Logger

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		logger.Error("could not apply schema", "error", err)
		os.Exit(1)
	}

	userRepo := repo.NewPostgresUserRepository(database)
	handlers.SetUserRepo(userRepo)
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetSaleRepo(repo.NewPostgresSaleRepository(database))
	handlers.SetStatsRepo(repo.NewPostgresStatsRepository(database))

	guard, err := auth.NewGuard(auth.Config{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
	}, userRepo, logger)
	if err != nil {
		logger.Error("could not construct identity guard", "error", err)
		os.Exit(1)
	}
	handlers.SetGuard(guard)

	// Redis only backs the login lockout; the API stays up without it.
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("could not connect to Redis, login lockout disabled", "error", err)
	} else {
		defer rdb.Close()
		handlers.SetRedisService(redissvc.NewRedisService(rdb, ctx))
	}
	handlers.SetLoginPolicy(cfg.LoginMaxFailures, cfg.LoginLockout)

	go ratelimit.StartVisitorCleanupLoop()

	r := router.NewRouter(guard)
	logger.Info("server running", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
