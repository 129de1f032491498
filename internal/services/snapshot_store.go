package services

import (
	"strings"
	"sync"
	"time"

	"bank-accounts/internal/dto"
	"bank-accounts/internal/models"
)

// SnapshotStore holds copies of the account state taken by the menu loop.
// Accounts themselves are only touched by the menu goroutine; readers such
// as the status server only ever see these copies.
type SnapshotStore struct {
	mu      sync.RWMutex
	views   []dto.AccountView
	takenAt time.Time
	clock   func() time.Time
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{clock: time.Now}
}

// Publish replaces the snapshot with the current state of accounts
func (s *SnapshotStore) Publish(accounts []models.Account) {
	views := make([]dto.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, dto.NewAccountView(account))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = views
	s.takenAt = s.clock()
}

// List returns the views of the given kind, all views when kind is empty
func (s *SnapshotStore) List(kind string) ([]dto.AccountView, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kind = strings.ToLower(kind)
	out := make([]dto.AccountView, 0, len(s.views))
	for _, v := range s.views {
		if kind == "" || v.Kind == kind {
			out = append(out, v)
		}
	}
	return out, s.takenAt
}

// Find returns the view of the account with the given ID
func (s *SnapshotStore) Find(id string) (dto.AccountView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.views {
		if v.ID == id {
			return v, true
		}
	}
	return dto.AccountView{}, false
}
