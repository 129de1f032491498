package repositories

import (
	"errors"
	"fmt"

	"bank-accounts/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJournalEntryNil      = errors.New("journal entry cannot be nil")
	ErrJournalEntryNotFound = errors.New("journal entry not found")
)

// JournalRepository handles database operations for journal entries
type JournalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *gorm.DB) JournalRepositoryInterface {
	return &JournalRepository{
		db: db,
	}
}

// Append stores a new journal entry. Entries are never updated.
func (r *JournalRepository) Append(entry *models.JournalEntry) error {
	if entry == nil {
		return ErrJournalEntryNil
	}

	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}

	return nil
}

// GetByReference retrieves a journal entry by its transaction reference
func (r *JournalRepository) GetByReference(reference string) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := r.db.Where("reference = ?", reference).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJournalEntryNotFound
		}
		return nil, fmt.Errorf("failed to get journal entry by reference: %w", err)
	}

	return &entry, nil
}

// ListByAccount returns the entries of an account, oldest first, with the total count
func (r *JournalRepository) ListByAccount(accountID string, offset, limit int) ([]models.JournalEntry, int64, error) {
	var entries []models.JournalEntry
	var total int64

	query := r.db.Model(&models.JournalEntry{}).Where("account_id = ?", accountID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count journal entries: %w", err)
	}

	if err := query.Order("occurred_at ASC").
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return entries, total, nil
}

// CountByAccount returns the number of entries stored for an account
func (r *JournalRepository) CountByAccount(accountID string) (int64, error) {
	var total int64
	if err := r.db.Model(&models.JournalEntry{}).Where("account_id = ?", accountID).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return total, nil
}
