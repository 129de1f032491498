package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a transaction record
type TransactionType string

const (
	TransactionTypeOpening     TransactionType = "opening"
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdrawal  TransactionType = "withdrawal"
	TransactionTypeInterest    TransactionType = "interest"
	TransactionTypeReturn      TransactionType = "investment_return"
	TransactionTypeFee         TransactionType = "fee"
	TransactionTypePortfolio   TransactionType = "portfolio"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeReversal    TransactionType = "reversal"
)

// Transaction descriptions
const (
	DescriptionOpening          = "Account opened"
	DescriptionDeposit          = "Deposit"
	DescriptionWithdrawal       = "Withdrawal"
	DescriptionInterest         = "Interest applied"
	DescriptionMaintenanceFee   = "Maintenance fee"
	DescriptionInvestmentReturn = "Investment return"
	DescriptionManagementFee    = "Management fee"
	DescriptionPortfolio        = "Portfolio investment"
	DescriptionTransferReversed = "Transfer reversed"
)

// Transaction is an immutable entry in an account's history.
// BalanceBefore is the balance prior to the change the entry describes.
type Transaction struct {
	Reference     string          `json:"reference"`
	Timestamp     time.Time       `json:"timestamp"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Amount        float64         `json:"amount"`
	BalanceBefore float64         `json:"balance_before"`
}

// BalanceAfter returns the balance once the transaction was applied
func (t Transaction) BalanceAfter() float64 {
	return t.BalanceBefore + t.Amount
}

// IsCredit returns true if the transaction increased the balance
func (t Transaction) IsCredit() bool {
	return t.Amount > 0
}

// GenerateTransactionReference generates a unique transaction reference
func GenerateTransactionReference() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}

// TransferSentDescription describes the sending leg of a transfer
func TransferSentDescription(counterpartID string) string {
	return "Transfer sent to " + counterpartID
}

// TransferReceivedDescription describes the receiving leg of a transfer
func TransferReceivedDescription(counterpartID string) string {
	return "Transfer received from " + counterpartID
}
