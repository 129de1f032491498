// Package server assembles the read-only status API served next to the menu session.
package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"bank-accounts/internal/config"
	"bank-accounts/internal/handlers"
	"bank-accounts/internal/middleware"
	"bank-accounts/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps are the collaborators the status API reads from
type Deps struct {
	Snapshots services.SnapshotReaderInterface
	// Journal is nil when journaling is disabled
	Journal  handlers.HealthCheckerInterface
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// StatusServer serves health, metrics and account snapshots over HTTP
type StatusServer struct {
	cfg     config.StatusConfig
	echo    *echo.Echo
	limiter *middleware.RateLimiter
	log     *slog.Logger
}

// NewStatusServer builds the echo instance with middleware and routes registered
func NewStatusServer(cfg config.StatusConfig, deps Deps) *StatusServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Logger, deps.Registry)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, 2*cfg.RateLimitPerSecond)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(limiter.Middleware())

	health := handlers.NewHealthCheckHandler(deps.Journal)
	accounts := handlers.NewAccountHandler(deps.Snapshots)

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", handlers.NewMetricsHandler(deps.Registry))
	e.GET("/accounts", accounts.ListAccounts)
	e.GET("/accounts/:id", accounts.GetAccount)

	return &StatusServer{cfg: cfg, echo: e, limiter: limiter, log: deps.Logger}
}

// Handler exposes the routed handler, mainly for tests
func (s *StatusServer) Handler() http.Handler {
	return s.echo
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down within the configured timeout
func (s *StatusServer) Run(ctx context.Context) error {
	go s.limiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("status server listening",
			slog.String("event_type", "status_server_started"),
			slog.String("addr", s.cfg.Addr),
		)
		if err := s.echo.Start(s.cfg.Addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Info("status server shutting down", slog.String("event_type", "status_server_stopped"))
	return s.echo.Shutdown(shutdownCtx)
}
