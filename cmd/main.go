package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/ipldash/internal/adapters/http/api"
	"github.com/okian/ipldash/internal/adapters/http/site"
	"github.com/okian/ipldash/internal/adapters/http/swagger"
	service "github.com/okian/ipldash/internal/app"
	"github.com/okian/ipldash/internal/config"
	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/pkg/logger"
	"github.com/okian/ipldash/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> .env -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := newService(cfg, loggerInstance)
	if err != nil {
		loggerInstance.Error(ctx, "invalid configuration", logger.Error(err))
		os.Exit(1)
	}

	// A failed load keeps the server up; every page then shows the error.
	if err := svc.Start(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		loggerInstance.Error(ctx, "dataset unavailable; serving error pages", logger.Error(err))
	}
	defer svc.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, svc, loggerInstance),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggerInstance.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// newService builds the dashboard service from cfg.
func newService(cfg *config.Config, l logger.Logger) (*service.Service, error) {
	src, err := model.ParseSeasonSource(cfg.SeasonSource)
	if err != nil {
		return nil, err
	}
	return service.New(
		service.WithLogger(l.Named("service")),
		service.WithDataPaths(cfg.MatchesPath, cfg.DeliveriesPath),
		service.WithSeasonSource(src),
	), nil
}

// newHandler wires every route: API, docs, metrics and the dashboard pages.
func newHandler(cfg *config.Config, svc *service.Service, l logger.Logger) http.Handler {
	mux := http.NewServeMux()

	// Register business API routes with the service dependency.
	api.NewServer(svc, svc,
		api.WithLogger(l.Named("api")),
		api.WithBoardLimits(cfg.DefaultTopN, cfg.MaxLeaderboardLimit),
	).Register(mux)

	// API documentation at /api-docs and /openapi.yaml
	swagger.Register(mux)

	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	// Dashboard pages take every remaining GET.
	site.NewHandler(svc,
		site.WithLogger(l.Named("site")),
		site.WithLimits(site.Limits{Default: cfg.DefaultTopN, Min: cfg.MinTopN, Max: cfg.MaxTopN}),
	).Register(mux)

	return api.RequestIDMiddleware(mux)
}
