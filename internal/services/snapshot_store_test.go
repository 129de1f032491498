package services

import (
	"sync"
	"testing"
	"time"

	"bank-accounts/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_PublishAndRead(t *testing.T) {
	seq := models.NewSequence(models.SequenceStart)
	savings := models.NewSavingsAccount("Ana", 1000, models.WithSequence(seq))
	checking := models.NewCheckingAccount("Bruno", -50, models.DefaultCheckingTerms(), models.WithSequence(seq))
	investment := models.NewInvestmentAccount("Carla", 2000, models.WithSequence(seq), models.WithRateSource(models.FixedRate(0.1)))
	require.True(t, investment.AllocatePortfolio(100, 0, 50))
	investment.ComputeInterest()

	store := NewSnapshotStore()
	taken := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	store.clock = func() time.Time { return taken }
	store.Publish([]models.Account{savings, checking, investment})

	all, at := store.List("")
	assert.Equal(t, taken, at)
	require.Len(t, all, 3)
	assert.Equal(t, "Savings-1000", all[0].ID)
	assert.Equal(t, "savings", all[0].Kind)
	assert.Nil(t, all[0].Overdraft)

	require.NotNil(t, all[1].Overdraft)
	assert.True(t, all[1].Overdraft.InUse)
	assert.Equal(t, models.DefaultOverdraftLimit, all[1].Overdraft.Limit)

	assert.Equal(t, 100.0, all[2].Portfolio["stocks"])
	assert.Equal(t, 50.0, all[2].Portfolio["funds"])
	require.NotNil(t, all[2].LastReturn)
	assert.InDelta(t, 0.1, *all[2].LastReturn, 1e-12)

	checkingOnly, _ := store.List("CHECKING")
	require.Len(t, checkingOnly, 1)
	assert.Equal(t, "Checking-1001", checkingOnly[0].ID)

	view, ok := store.Find("Investment-1002")
	assert.True(t, ok)
	assert.Equal(t, "Carla", view.Holder)

	_, ok = store.Find("Savings-9999")
	assert.False(t, ok)
}

func TestSnapshotStore_IsACopy(t *testing.T) {
	account := models.NewSavingsAccount("Ana", 1000, models.WithSequence(models.NewSequence(1)))
	store := NewSnapshotStore()
	store.Publish([]models.Account{account})

	account.Deposit(500)

	view, ok := store.Find(account.ID())
	require.True(t, ok)
	assert.Equal(t, 1000.0, view.Balance)
	assert.Equal(t, 1, view.Transactions)
}

func TestSnapshotStore_ConcurrentReaders(t *testing.T) {
	seq := models.NewSequence(1)
	accounts := []models.Account{models.NewSavingsAccount("Ana", 1, models.WithSequence(seq))}
	store := NewSnapshotStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.List("")
				store.Find("Savings-1")
			}
		}()
	}
	for j := 0; j < 100; j++ {
		store.Publish(accounts)
	}
	wg.Wait()

	all, _ := store.List("")
	assert.Len(t, all, 1)
}
