package handlers

import (
	"context"
	"net/http"
	"time"

	"transaction-explorer/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// DatabaseChecker reports store connectivity and pool usage
type DatabaseChecker interface {
	HealthCheck() error
	Stats() (open, inUse, idle int, err error)
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db DatabaseChecker
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db DatabaseChecker) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and database status
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- h.db.HealthCheck()
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	response := map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if open, inUse, idle, err := h.db.Stats(); err == nil {
		response["database"] = map[string]int{
			"open":   open,
			"in_use": inUse,
			"idle":   idle,
		}
	}
	return c.JSON(http.StatusOK, response)
}
