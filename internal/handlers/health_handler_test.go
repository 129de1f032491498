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

type stubJournal struct {
	err error
}

func (s stubJournal) HealthCheck() error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name        string
		journal     HealthCheckerInterface
		wantStatus  int
		wantJournal string
	}{
		{name: "journal disabled", journal: nil, wantStatus: http.StatusOK, wantJournal: "disabled"},
		{name: "journal healthy", journal: stubJournal{}, wantStatus: http.StatusOK, wantJournal: "ok"},
		{name: "journal down", journal: stubJournal{err: stderrors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			require.NoError(t, NewHealthCheckHandler(tt.journal).HealthCheck(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "healthy", body["status"])
				assert.Equal(t, tt.wantJournal, body["journal"])
				assert.NotEmpty(t, body["time"])
				return
			}

			var body errors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(errors.SystemServiceUnavailable), body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
