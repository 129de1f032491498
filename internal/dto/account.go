package dto

// CreateAccountRequest carries the input of the create-account action
type CreateAccountRequest struct {
	Kind           string  `json:"kind" validate:"required,account_kind"`
	Holder         string  `json:"holder" validate:"required,not_blank,max=100"`
	InitialBalance float64 `json:"initial_balance"`
	// OverdraftLimit applies to checking accounts; nil uses the configured default
	OverdraftLimit *float64 `json:"overdraft_limit,omitempty" validate:"omitempty,gte=0"`
}

// TransferRequest selects two accounts by position and the amount to move
type TransferRequest struct {
	FromIndex int     `json:"from_index" validate:"gte=0"`
	ToIndex   int     `json:"to_index" validate:"gte=0"`
	Amount    float64 `json:"amount"`
}

// PortfolioRequest carries the amounts to move into each investment bucket
type PortfolioRequest struct {
	AccountIndex int     `json:"account_index" validate:"gte=0"`
	Stocks       float64 `json:"stocks"`
	Bonds        float64 `json:"bonds"`
	Funds        float64 `json:"funds"`
}
