package handlers

import (
	"net/http"

	"bank-accounts/internal/dto"
	"bank-accounts/internal/errors"
	"bank-accounts/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler serves read-only views of the accounts held by the menu session
type AccountHandler struct {
	snapshots services.SnapshotReaderInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(snapshots services.SnapshotReaderInterface) *AccountHandler {
	return &AccountHandler{snapshots: snapshots}
}

// ListAccounts returns every account, optionally filtered by ?kind=
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	var query dto.AccountListQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return err
	}

	views, takenAt := h.snapshots.List(query.Kind)
	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: views,
		Total:    len(views),
		TakenAt:  takenAt,
	})
}

// GetAccount returns a single account by its ID, e.g. Savings-1000
func (h *AccountHandler) GetAccount(c echo.Context) error {
	view, ok := h.snapshots.Find(c.Param("id"))
	if !ok {
		return SendError(c, errors.AccountNotFound)
	}
	return c.JSON(http.StatusOK, view)
}
