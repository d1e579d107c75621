package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/tellerledger/internal/adapter/http/handler"
	"github.com/iho/tellerledger/internal/adapter/http/middleware"
	"github.com/iho/tellerledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ReportHandler      *handler.ReportHandler
	TransactionHandler *handler.TransactionHandler
	DirectoryHandler   *handler.DirectoryHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	RateLimiter        *middleware.RateLimiter
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and telemetry endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Ledger
		r.Get("/ledger/report", cfg.ReportHandler.Get)

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Append)
			r.Post("/manual", cfg.TransactionHandler.CreateManual)
			r.Get("/", cfg.TransactionHandler.List)
		})

		// Directory
		r.Get("/agents", cfg.DirectoryHandler.ListAgents)
		r.Get("/areas/{id}/agents", cfg.DirectoryHandler.ListAgentsInArea)
		r.Get("/collectors/{id}/agents", cfg.DirectoryHandler.ListAgentsUnderCollector)
	})

	return r
}
