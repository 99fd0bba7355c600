package handlers

import (
	"log/slog"
	"net/http"

	"transaction-explorer/internal/errors"

	"github.com/labstack/echo/v4"
)

// All handlers respond with errors through these helpers:
//
// 1. SendError - client errors (4xx) and known failures with their own code
//    - Validation errors: SendError(c, errors.ValidationInvalidDate, errors.WithDetails("..."))
//    - Bad cursor: SendError(c, errors.TransactionInvalidCursor)
//
// 2. SendSystemError - store or unexpected failures (500). The internal error is logged,
//    never returned to the client.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs the internal error and responds with a generic system error
func SendSystemError(c echo.Context, err error) error {
	logSystemError(c, err)
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

func logSystemError(c echo.Context, err error) {
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)
}
