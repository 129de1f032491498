package services

import (
	"log/slog"

	"bank-accounts/internal/models"
	"bank-accounts/internal/repositories"
)

// JournalRecorder mirrors every transaction into the journal database.
// Write failures are logged and never reach the account. After repeated
// failures the breaker opens and entries are dropped until it resets.
type JournalRecorder struct {
	repo    repositories.JournalRepositoryInterface
	breaker CircuitBreakerInterface
	logger  *slog.Logger
}

// NewJournalRecorder creates a recorder writing through repo. breaker may be nil.
func NewJournalRecorder(repo repositories.JournalRepositoryInterface, breaker CircuitBreakerInterface, logger *slog.Logger) *JournalRecorder {
	return &JournalRecorder{
		repo:    repo,
		breaker: breaker,
		logger:  logger,
	}
}

// Record implements models.Recorder
func (jr *JournalRecorder) Record(accountID string, tx models.Transaction) {
	if jr.breaker != nil && jr.breaker.IsOpen() {
		jr.logger.Warn("journal unavailable, entry dropped",
			slog.String("event_type", "journal_write_skipped"),
			slog.String("account_id", accountID),
			slog.String("reference", tx.Reference),
		)
		return
	}

	if err := jr.repo.Append(models.NewJournalEntry(accountID, tx)); err != nil {
		if jr.breaker != nil {
			jr.breaker.RecordFailure()
		}
		jr.logger.Error("failed to journal transaction",
			slog.String("event_type", "journal_write_failed"),
			slog.String("account_id", accountID),
			slog.String("reference", tx.Reference),
			slog.String("error", err.Error()),
		)
		return
	}

	if jr.breaker != nil {
		jr.breaker.RecordSuccess()
	}
}
