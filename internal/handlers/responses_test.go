package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bank-accounts/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendError(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(TraceIDContextKey, "trace-7")

	require.NoError(t, SendError(c, errors.ValidationGeneral, errors.WithDetails("kind is required")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "trace-7", body.Error.TraceID)
	assert.Equal(t, []string{"kind is required"}, body.Error.Details)
}

func TestSendSystemError(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, SendSystemError(c, stderrors.New("disk on fire")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
	assert.Contains(t, rec.Body.String(), string(errors.SystemInternalError))
}
