package repositories

import (
	"bank-accounts/internal/models"
)

// JournalRepositoryInterface defines the contract for journal repository operations
type JournalRepositoryInterface interface {
	Append(entry *models.JournalEntry) error
	GetByReference(reference string) (*models.JournalEntry, error)
	ListByAccount(accountID string, offset, limit int) ([]models.JournalEntry, int64, error)
	CountByAccount(accountID string) (int64, error)
}
