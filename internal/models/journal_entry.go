package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrJournalAccountRequired   = errors.New("journal entry account ID is required")
	ErrJournalReferenceRequired = errors.New("journal entry reference is required")
)

// JournalEntry is the stored form of a Transaction
type JournalEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID     string          `gorm:"type:varchar(40);not null;index" json:"account_id"`
	Reference     string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"reference"`
	Type          string          `gorm:"type:varchar(20);not null" json:"type"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"balance_after"`
	OccurredAt    time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
}

// NewJournalEntry converts a transaction of accountID into its stored form
func NewJournalEntry(accountID string, tx Transaction) *JournalEntry {
	return &JournalEntry{
		AccountID:     accountID,
		Reference:     tx.Reference,
		Type:          string(tx.Type),
		Description:   tx.Description,
		Amount:        decimal.NewFromFloat(tx.Amount).Round(2),
		BalanceBefore: decimal.NewFromFloat(tx.BalanceBefore).Round(2),
		BalanceAfter:  decimal.NewFromFloat(tx.BalanceAfter()).Round(2),
		OccurredAt:    tx.Timestamp,
	}
}

// BeforeCreate hook for JournalEntry
func (e *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = e.CreatedAt
	}

	return e.Validate()
}

// Validate validates the journal entry fields
func (e *JournalEntry) Validate() error {
	if e.AccountID == "" {
		return ErrJournalAccountRequired
	}

	if e.Reference == "" {
		return ErrJournalReferenceRequired
	}

	if e.Description == "" {
		return errors.New("journal entry description is required")
	}

	return nil
}

// TableName returns the table name for JournalEntry
func (e *JournalEntry) TableName() string {
	return "journal_entries"
}
