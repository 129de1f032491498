package handlers

import (
	"net/http"
	"time"

	"bank-accounts/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheckerInterface is satisfied by the journal database
type HealthCheckerInterface interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	journal HealthCheckerInterface
	clock   func() time.Time
}

// NewHealthCheckHandler creates a new health check handler. journal may be nil
// when journaling is disabled.
func NewHealthCheckHandler(journal HealthCheckerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{journal: journal, clock: time.Now}
}

// HealthCheck reports the process and journal status
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	journal := "disabled"
	if h.journal != nil {
		if err := h.journal.HealthCheck(); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Journal database connection failed"))
		}
		journal = "ok"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"journal": journal,
		"time":    h.clock().UTC().Format(time.RFC3339),
	})
}
