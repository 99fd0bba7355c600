package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"transaction-explorer/internal/config"
	"transaction-explorer/internal/database"
	"transaction-explorer/internal/handlers"
	"transaction-explorer/internal/middleware"
	"transaction-explorer/internal/repositories"
	"transaction-explorer/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const bodyLimit = "1M"

// Server is the HTTP API over the transaction ledger
type Server struct {
	echo        *echo.Echo
	cfg         *config.Config
	rateLimiter *middleware.RateLimiter
}

// New builds the echo instance, wires the ledger services over db and registers every route.
// Metrics are registered on reg and exposed from it at /metrics.
func New(cfg *config.Config, db *database.DB, reg *prometheus.Registry, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(reg)

	rateLimiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		ExposeHeaders: []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(rateLimiter.Middleware())

	repo := repositories.NewTransactionRepository(db.DB)
	ledger := services.NewLedger(
		repo,
		cfg.Pagination,
		services.NewPrometheusMetrics(reg),
		services.NewQueryLogger(logger),
	)

	transactionHandler := handlers.NewTransactionHandler(
		ledger.OffsetPager,
		ledger.CursorPager,
		ledger.DailyAggregator,
		ledger.ExportSweep,
	)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	transactions := e.Group("/transaction")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/cursor", transactionHandler.ListTransactionsCursor)
	transactions.GET("/daily-totals", transactionHandler.GetDailyTotals)
	transactions.GET("/export", transactionHandler.ExportTransactions)

	return &Server{
		echo:        e,
		cfg:         cfg,
		rateLimiter: rateLimiter,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then drains in-flight requests within the shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	s.rateLimiter.StartCleanup(ctx)

	httpServer := &http.Server{
		Addr:           net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port),
		Handler:        s.echo,
		ReadTimeout:    s.cfg.Server.ReadTimeout,
		WriteTimeout:   s.cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "addr", httpServer.Addr, "environment", s.cfg.Server.Environment)
		if err := s.echo.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server", "timeout", s.cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
