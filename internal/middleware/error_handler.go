package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"bank-accounts/internal/errors"
	"bank-accounts/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewHTTPErrorHandler returns an echo error handler that renders standardized
// error responses, logs them and counts them in reg
func NewHTTPErrorHandler(logger *slog.Logger, reg prometheus.Registerer) echo.HTTPErrorHandler {
	apiErrorsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_api_errors_total",
			Help: "Total number of status API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var errorResponse *errors.ErrorResponse
		var httpStatus int

		var echoErr *echo.HTTPError
		var validationErr *validation.Error
		switch {
		case stderrors.As(err, &echoErr):
			errorResponse = errors.NewErrorResponse(
				mapHTTPStatusToErrorCode(echoErr.Code),
				traceID,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		case stderrors.As(err, &validationErr):
			errorResponse = errors.NewValidationError(validationErr.Fields, traceID)
			httpStatus = http.StatusBadRequest
		default:
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		logger.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			slog.String("trace_id", traceID),
			slog.String("error_code", errorResponse.Error.Code),
			slog.Int("status", httpStatus),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
			slog.String("error", err.Error()),
		)

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			fmt.Sprintf("%d", httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			logger.Error("failed to send error response",
				slog.String("trace_id", traceID),
				slog.String("error", sendErr.Error()),
			)
		}
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.RouteNotFound
	case http.StatusMethodNotAllowed:
		return errors.RouteMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
