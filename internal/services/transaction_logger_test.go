package services

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"bank-accounts/internal/logging"
	"bank-accounts/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTransactionLine(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		tx        models.Transaction
		want      string
	}{
		{
			name:      "deposit",
			accountID: "Savings-1000",
			tx:        models.Transaction{Description: models.DescriptionDeposit, Amount: 1500000},
			want:      "Savings-1000 - Deposit: $1,500,000.00",
		},
		{
			name:      "withdrawal is negative",
			accountID: "Checking-1001",
			tx:        models.Transaction{Description: models.DescriptionWithdrawal, Amount: -120000},
			want:      "Checking-1001 - Withdrawal: $-120,000.00",
		},
		{
			name:      "transfer",
			accountID: "Savings-1000",
			tx:        models.Transaction{Description: models.TransferSentDescription("Investment-1002"), Amount: -0.5},
			want:      "Savings-1000 - Transfer sent to Investment-1002: $-0.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTransactionLine(tt.accountID, tt.tx))
		})
	}
}

func TestTransactionLogger_WritesLogLine(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTransactionLogger(slog.New(logging.NewLineHandler(&buf, slog.LevelInfo)))

	account := models.NewSavingsAccount("Ana", 1000, models.WithSequence(models.NewSequence(1000)), models.WithRecorder(logger))
	account.Deposit(250)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} - INFO - Savings-1000 - Account opened: \$1,000\.00$`, string(lines[0]))
	assert.Regexp(t, ` - INFO - Savings-1000 - Deposit: \$250\.00$`, string(lines[1]))
}

func TestTransactionLogger_StructuredAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTransactionLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	logger.Record("Checking-1001", models.Transaction{
		Reference:     "TXN-abc",
		Timestamp:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Type:          models.TransactionTypeFee,
		Description:   models.DescriptionMaintenanceFee,
		Amount:        -5000,
		BalanceBefore: 20000,
	})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Checking-1001 - Maintenance fee: $-5,000.00", record["msg"])
	assert.Equal(t, "transaction", record["event_type"])
	assert.Equal(t, "Checking-1001", record["account_id"])
	assert.Equal(t, "TXN-abc", record["reference"])
	assert.Equal(t, "fee", record["type"])
	assert.Equal(t, -5000.0, record["amount"])
	assert.Equal(t, 20000.0, record["balance_before"])
}
