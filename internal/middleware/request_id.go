package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is the header name for the trace ID
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

type traceIDKey struct{}

// RequestID assigns every request a trace ID, reusing the one sent by the
// client, and exposes it in the response header, the echo context and the
// request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), traceIDKey{}, traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID extracts the trace ID from the Echo context
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// TraceIDFromContext extracts the trace ID stored by RequestID from ctx
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}
