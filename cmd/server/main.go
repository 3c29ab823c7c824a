package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/devio/fornecedores-api/docs"
	"github.com/devio/fornecedores-api/internal/api"
	"github.com/devio/fornecedores-api/internal/core/domain"
	"github.com/devio/fornecedores-api/internal/infrastructure/config"
	mongodb "github.com/devio/fornecedores-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devio/fornecedores-api/internal/infrastructure/db/redis"
	"github.com/devio/fornecedores-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Fornecedores API
// @version      1.0
// @description  Registration, login and claim-gated supplier management.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	authRepo := mongodb.NewAuthRepository(db)
	supplierRepo := mongodb.NewSupplierRepository(db)
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := supplierRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create supplier indexes")
	}

	// Seed the role carrying the delete-supplier claim so the stricter
	// DELETE policy is grantable through the store.
	if err := authRepo.EnsureRole(ctx, domain.Role{
		Name:   "Fornecedor",
		Claims: []domain.Claim{{Type: domain.ClaimDeleteSupplier, Value: "true"}},
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to seed roles")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
