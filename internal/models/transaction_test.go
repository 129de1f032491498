package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_BalanceAfter(t *testing.T) {
	tests := []struct {
		name   string
		tx     Transaction
		after  float64
		credit bool
	}{
		{name: "deposit", tx: Transaction{Amount: 250, BalanceBefore: 1000}, after: 1250, credit: true},
		{name: "withdrawal", tx: Transaction{Amount: -400, BalanceBefore: 1000}, after: 600, credit: false},
		{name: "into overdraft", tx: Transaction{Amount: -120000, BalanceBefore: 50000}, after: -70000, credit: false},
		{name: "zero amount", tx: Transaction{Amount: 0, BalanceBefore: 10}, after: 10, credit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.after, tt.tx.BalanceAfter())
			assert.Equal(t, tt.credit, tt.tx.IsCredit())
		})
	}
}

func TestGenerateTransactionReference(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN-[0-9a-f]{8}-\d{14}$`)
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		ref := GenerateTransactionReference()
		assert.Regexp(t, pattern, ref)
		seen[ref] = struct{}{}
	}

	assert.Len(t, seen, 100)
}

func TestTransferDescriptions(t *testing.T) {
	assert.Equal(t, "Transfer sent to Checking-1001", TransferSentDescription("Checking-1001"))
	assert.Equal(t, "Transfer received from Savings-1000", TransferReceivedDescription("Savings-1000"))
}
