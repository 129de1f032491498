package middleware

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bank-accounts/internal/errors"
	"bank-accounts/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for the HTTP error handler
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	reg     *prometheus.Registry
	handler echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.reg = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), s.reg)
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) serve(err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/accounts", nil), rec)
	c.Set(TraceIDContextKey, "trace-1")

	s.handler(err, c)

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPErrors() {
	tests := []struct {
		status int
		code   errors.ErrorCode
	}{
		{http.StatusNotFound, errors.RouteNotFound},
		{http.StatusMethodNotAllowed, errors.RouteMethodNotAllowed},
		{http.StatusBadRequest, errors.ValidationGeneral},
		{http.StatusTooManyRequests, errors.SystemRateLimitExceeded},
		{http.StatusServiceUnavailable, errors.SystemServiceUnavailable},
		{http.StatusTeapot, errors.SystemUnexpectedError},
	}

	for _, tt := range tests {
		rec, body := s.serve(echo.NewHTTPError(tt.status, "boom"))
		s.Equal(tt.status, rec.Code)
		s.Equal(string(tt.code), body.Error.Code)
		s.Equal("boom", body.Error.Message)
		s.Equal("trace-1", body.Error.TraceID)
	}
}

func (s *ErrorHandlerTestSuite) TestValidationError() {
	verr := &validation.Error{Fields: map[string]string{"kind": "kind must be one of savings, checking, investment"}}

	rec, body := s.serve(verr)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), body.Error.Code)
	s.Equal([]string{"kind: kind must be one of savings, checking, investment"}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorHidesInternals() {
	rec, body := s.serve(stderrors.New("db password leaked"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.NotContains(rec.Body.String(), "password")
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	s.serve(echo.NewHTTPError(http.StatusNotFound, "missing"))
	s.serve(echo.NewHTTPError(http.StatusNotFound, "missing"))

	count, err := testutil.GatherAndCount(s.reg, "status_api_errors_total")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.handler(stderrors.New("late"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}
