package handlers

import (
	"net/http"

	"bank-accounts/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures only through SendError (4xx and known codes) and
// SendSystemError (500, internal error hidden from the client).

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

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
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
