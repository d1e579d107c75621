package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/tellerledger/internal/adapter/http"
	"github.com/iho/tellerledger/internal/adapter/http/handler"
	apimiddleware "github.com/iho/tellerledger/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/tellerledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/tellerledger/internal/adapter/repository/redis"
	"github.com/iho/tellerledger/internal/infrastructure/config"
	"github.com/iho/tellerledger/internal/infrastructure/logger"
	"github.com/iho/tellerledger/internal/infrastructure/metrics"
	"github.com/iho/tellerledger/internal/infrastructure/postgres"
	"github.com/iho/tellerledger/internal/infrastructure/redis"
	"github.com/iho/tellerledger/internal/usecase"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txRepo := postgresRepo.NewTransactionRepository(pool, m)
	openingRepo := postgresRepo.NewOpeningBalanceRepository(pool, m)
	directoryRepo := postgresRepo.NewDirectoryRepository(pool, m)
	retrier := postgresRepo.NewRetrier(log.Logger)
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	reportCacheTTL := cfg.ReportCacheTTL
	if reportCacheTTL <= 0 {
		reportCacheTTL = usecase.DefaultReportCacheTTL
	}

	// Initialize use cases
	reportUC := usecase.NewReportUseCase(txRepo, directoryRepo, openingRepo, cache, reportCacheTTL, m)
	txUC := usecase.NewTransactionUseCase(txRepo, idGen, retrier, m)
	manualUC := usecase.NewManualEntryUseCase(txRepo, idGen, retrier, m)
	directoryUC := usecase.NewDirectoryUseCase(directoryRepo)

	// Initialize handlers
	reportHandler := handler.NewReportHandler(reportUC)
	txHandler := handler.NewTransactionHandler(txUC, manualUC)
	directoryHandler := handler.NewDirectoryHandler(directoryUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var rateLimiter *apimiddleware.RateLimiter
	if cfg.RateLimitPerSecond > 0 {
		rateLimiter = apimiddleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReportHandler:      reportHandler,
		TransactionHandler: txHandler,
		DirectoryHandler:   directoryHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		RateLimiter:        rateLimiter,
		Logger:             log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
