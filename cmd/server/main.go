package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"client-directory/internal/config"
	"client-directory/internal/handlers"
	"client-directory/internal/middleware"
	"client-directory/internal/repositories"
	"client-directory/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	sheetLogger := services.NewSheetLogger(logger)

	source := repositories.NewGoogleSheetSource(&cfg.Sheets, logger)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfigFrom(cfg.CircuitBreaker))
	services.WatchBreaker(breaker, metrics, sheetLogger)

	sheets := services.NewSheetService(source, breaker, metrics, sheetLogger)
	directory := services.NewDirectoryService(sheets, metrics, sheetLogger, cfg.Listing)
	details := services.NewClientDetailService(sheets, metrics, sheetLogger)
	views := services.NewViewTracker()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Cleanup(ctx, time.Minute)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader, handlers.ViewIDHeader},
	}))
	e.Use(limiter.Middleware())

	handlers.RegisterRoutes(e, handlers.Handlers{
		Clients: handlers.NewClientHandler(directory, details, sheets, views, sheetLogger, metrics),
		Health:  handlers.NewHealthCheckHandler(sheets),
		Metrics: promhttp.Handler(),
	})

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting server",
			"address", server.Addr,
			"environment", cfg.Server.Environment,
			"spreadsheet_id", cfg.Sheets.SpreadsheetID,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
