package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"confidential-ledger/config"
	httpHandler "confidential-ledger/internal/adapter/http/handler"
	pgStorage "confidential-ledger/internal/adapter/storage/postgres"
	redisStorage "confidential-ledger/internal/adapter/storage/redis"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/internal/service"
	"confidential-ledger/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Confidential Ledger")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	principalRepo := pgStorage.NewPrincipalRepo(pool)
	eventJournal := pgStorage.NewEventJournal(pool)

	// Initialize core services
	hashSvc := service.NewBcryptHashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	sigSvc := service.NewHMACSignatureService()

	// Event sinks: structured log, durable journal, Redis pub/sub,
	// optional HMAC-signed indexer webhook.
	journalSink := service.NewJournalSink(eventJournal, cfg.Ledger.EventBuffer, log)
	go journalSink.Run(ctx)

	sinks := []ports.EventSink{
		service.NewLogSink(log),
		journalSink,
		redisStorage.NewEventPublisher(rdb, log),
	}
	if cfg.Ledger.IndexerURL != "" {
		sinks = append(sinks, service.NewWebhookSink(
			cfg.Ledger.IndexerURL,
			cfg.Ledger.IndexerSecret,
			sigSvc,
			&http.Client{Timeout: 10 * time.Second},
			log,
		))
	}
	broadcaster := service.NewBroadcaster(sinks...)

	// Resolve the initial auditor identity
	auditorID, err := uuid.Parse(cfg.Ledger.AuditorID)
	if err != nil {
		log.Fatal().Err(err).Msg("ledger.auditor_id must be a valid UUID")
	}

	// Initialize business services
	ledgerSvc, err := service.NewLedgerService(auditorID, broadcaster, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ledger")
	}
	authSvc := service.NewAuthService(principalRepo, hashSvc, tokenSvc)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Stop the journal worker after the server drains
	cancel()

	log.Info().Msg("Server exited")
}
