// Package main runs the magazine store HTTP API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"magazine-press/internal/config"
	hhttp "magazine-press/internal/handler/http"
	harticle "magazine-press/internal/handler/http/article"
	hauthor "magazine-press/internal/handler/http/author"
	hmagazine "magazine-press/internal/handler/http/magazine"
	"magazine-press/internal/infra/adapter/persistence/postgres"
	"magazine-press/internal/infra/adapter/persistence/sqlite"
	"magazine-press/internal/infra/db"
	"magazine-press/internal/observability/logging"
	"magazine-press/internal/observability/tracing"
	"magazine-press/internal/resilience/circuitbreaker"
	artUC "magazine-press/internal/usecase/article"
	authorUC "magazine-press/internal/usecase/author"
	magUC "magazine-press/internal/usecase/magazine"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		logger.Error("failed to load database configuration", slog.Any("error", err))
		os.Exit(1)
	}
	srvCfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Endpoint:       srvCfg.TracingEndpoint,
		ServiceName:    "magazine-press-api",
		ServiceVersion: srvCfg.Version,
	})
	if err != nil {
		logger.Error("failed to set up tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("failed to flush traces", slog.Any("error", err))
		}
	}()

	database := initDatabase(logger, dbCfg, srvCfg.EnsureSchema)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, dbCfg, srvCfg)
	runServer(logger, handler, srvCfg)
}

// initDatabase opens the store and, when enabled, creates missing tables.
func initDatabase(logger *slog.Logger, cfg *config.DatabaseConfig, ensureSchema bool) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open database", slog.String("driver", cfg.Driver), slog.Any("error", err))
		os.Exit(1)
	}
	if ensureSchema {
		if err := db.EnsureSchema(ctx, database, cfg.Driver); err != nil {
			logger.Error("failed to ensure schema", slog.Any("error", err))
			os.Exit(1)
		}
	}
	return database
}

// setupServer builds the use cases over the store and returns the routed,
// middleware-wrapped handler.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.DatabaseConfig, srvCfg *config.ServerConfig) http.Handler {
	var connector db.Connector = db.NewSQLConnector(database)
	health := &hhttp.HealthHandler{DB: database, Version: srvCfg.Version}
	if cfg.CircuitBreaker.Enabled {
		cb := circuitbreaker.NewConnector(connector, circuitbreaker.DBConfig(cfg.CircuitBreaker.Timeout))
		connector = cb
		health.Breaker = cb.Breaker()
		logger.Info("database circuit breaker enabled", slog.Duration("timeout", cfg.CircuitBreaker.Timeout))
	}

	var (
		authorSvc   authorUC.Service
		magazineSvc magUC.Service
		articleSvc  artUC.Service
	)
	if cfg.Driver == db.DialectPostgres {
		authorSvc.Repo = postgres.NewAuthorRepo(connector)
		magazineSvc.Repo = postgres.NewMagazineRepo(connector)
		articleSvc.Repo = postgres.NewArticleRepo(connector)
	} else {
		authorSvc.Repo = sqlite.NewAuthorRepo(connector)
		magazineSvc.Repo = sqlite.NewMagazineRepo(connector)
		articleSvc.Repo = sqlite.NewArticleRepo(connector)
	}
	articleSvc.Authors = authorSvc.Repo
	articleSvc.Magazines = magazineSvc.Repo

	mux := http.NewServeMux()
	mux.Handle("GET /health", health)
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	hauthor.Register(mux, authorSvc)
	hmagazine.Register(mux, magazineSvc)
	harticle.Register(mux, articleSvc)

	limiter := hhttp.NewRateLimiter(srvCfg.RateLimit.RequestsPerSecond, srvCfg.RateLimit.Burst)
	if limiter != nil {
		logger.Info("rate limiting enabled",
			slog.Float64("rps", srvCfg.RateLimit.RequestsPerSecond),
			slog.Int("burst", srvCfg.RateLimit.Burst))
	}
	opts := hhttp.ChainOptions{Limiter: limiter}
	if srvCfg.JWTSecret != "" {
		opts.JWTSecret = []byte(srvCfg.JWTSecret)
		logger.Info("bearer authentication enabled for write requests")
	}
	return hhttp.Chain(logger, opts, mux)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, cfg *config.ServerConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()
	logger.Info("server stopped")
}
