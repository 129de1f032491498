package dto

import (
	"time"

	"bank-accounts/internal/models"
)

// AccountView is the read-only JSON form of an account
type AccountView struct {
	ID           string             `json:"id"`
	Kind         string             `json:"kind"`
	Holder       string             `json:"holder"`
	Balance      float64            `json:"balance"`
	OpenedAt     time.Time          `json:"opened_at"`
	Transactions int                `json:"transactions"`
	Summary      string             `json:"summary"`
	Overdraft    *OverdraftView     `json:"overdraft,omitempty"`
	Portfolio    map[string]float64 `json:"portfolio,omitempty"`
	LastReturn   *float64           `json:"last_return,omitempty"`
}

// OverdraftView describes the terms of a checking account
type OverdraftView struct {
	Limit          float64 `json:"limit"`
	MaintenanceFee float64 `json:"maintenance_fee"`
	InUse          bool    `json:"in_use"`
}

// AccountListQuery filters the account listing
type AccountListQuery struct {
	Kind string `query:"kind" json:"kind" validate:"omitempty,account_kind"`
}

// AccountListResponse is the body of the account listing
type AccountListResponse struct {
	Accounts []AccountView `json:"accounts"`
	Total    int           `json:"total"`
	TakenAt  time.Time     `json:"taken_at"`
}

// NewAccountView captures the current state of account
func NewAccountView(account models.Account) AccountView {
	view := AccountView{
		ID:           account.ID(),
		Kind:         string(account.Kind()),
		Holder:       account.Holder(),
		Balance:      account.Balance(),
		OpenedAt:     account.OpenedAt(),
		Transactions: len(account.Transactions()),
		Summary:      account.String(),
	}

	switch a := account.(type) {
	case *models.CheckingAccount:
		view.Overdraft = &OverdraftView{
			Limit:          a.OverdraftLimit(),
			MaintenanceFee: a.MaintenanceFee(),
			InUse:          a.InOverdraft(),
		}
	case *models.InvestmentAccount:
		view.Portfolio = make(map[string]float64, len(models.Buckets))
		for bucket, amount := range a.Portfolio() {
			view.Portfolio[string(bucket)] = amount
		}
		if rate, ok := a.LastReturnRate(); ok {
			view.LastReturn = &rate
		}
	}

	return view
}
