// Command api runs the store HTTP server.
//
// @title           Store API
// @version         1.0
// @description     REST backend for the store frontend: auth, products, todos, chat and payments.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storelabs/store-api/internal/api"
	"github.com/storelabs/store-api/internal/auth"
	"github.com/storelabs/store-api/internal/core/service"
	"github.com/storelabs/store-api/internal/infrastructure/config"
	mongodb "github.com/storelabs/store-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storelabs/store-api/internal/infrastructure/db/redis"
	"github.com/storelabs/store-api/internal/infrastructure/payment"
	"github.com/storelabs/store-api/internal/infrastructure/queue"
	"github.com/storelabs/store-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	todoRepo := mongodb.NewTodoRepository(db)
	chatRepo := mongodb.NewChatRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	// The unique username index must exist before registrations are accepted.
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create product indexes")
	}

	// --- Audit pipeline ---
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	// --- Services ---
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := auth.NewVerifier(cfg.JWTSecret)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxAttempts, cfg.Throttle.Window)

	authService := service.NewAuthService(userRepo, issuer, throttle, dispatcher, log)
	productService := service.NewProductService(productRepo, dispatcher, log)
	todoService := service.NewTodoService(todoRepo, dispatcher, log)
	chatService := service.NewChatService(chatRepo, dispatcher, log)

	stripeProvider, err := payment.NewStripeProvider(cfg.Stripe.SecretKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("payment provider initialisation failed")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:     authService,
		Products: productService,
		Todos:    todoService,
		Chat:     chatService,
		Payments: stripeProvider,
		Verifier: verifier,
		Mongo:    db,
		Redis:    rdb,
		Logger:   log,
	})

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		serverErrors <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-serverErrors:
		log.Fatal().Err(err).Msg("http server failed")
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
