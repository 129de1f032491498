package services

import (
	"fmt"
	"log/slog"

	"bank-accounts/internal/models"
)

// TransactionLogger writes one log line per transaction:
// "<account id> - <description>: $<amount>"
type TransactionLogger struct {
	logger *slog.Logger
}

func NewTransactionLogger(logger *slog.Logger) *TransactionLogger {
	return &TransactionLogger{
		logger: logger,
	}
}

// Record implements models.Recorder
func (tl *TransactionLogger) Record(accountID string, tx models.Transaction) {
	tl.logger.Info(FormatTransactionLine(accountID, tx),
		slog.String("event_type", "transaction"),
		slog.String("account_id", accountID),
		slog.String("reference", tx.Reference),
		slog.String("type", string(tx.Type)),
		slog.Float64("amount", tx.Amount),
		slog.Float64("balance_before", tx.BalanceBefore),
		slog.Time("timestamp", tx.Timestamp),
	)
}

// FormatTransactionLine renders the message of a transaction log line
func FormatTransactionLine(accountID string, tx models.Transaction) string {
	return fmt.Sprintf("%s - %s: $%s", accountID, tx.Description, models.FormatMoney(tx.Amount))
}
