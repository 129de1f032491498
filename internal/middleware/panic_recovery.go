package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"bank-accounts/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery is a middleware that recovers from panics and returns a standardized error response
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					logger.Error("panic recovered",
						slog.String("trace_id", traceID),
						slog.String("panic", fmt.Sprintf("%v", r)),
						slog.String("stack_trace", string(debug.Stack())),
						slog.String("path", c.Request().URL.Path),
						slog.String("method", c.Request().Method),
					)

					errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
					if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
						logger.Error("failed to send panic recovery response",
							slog.String("trace_id", traceID),
							slog.String("error", err.Error()),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
