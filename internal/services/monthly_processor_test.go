package services

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"bank-accounts/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type MonthlyProcessorSuite struct {
	suite.Suite
	metrics   *PrometheusMetrics
	processor MonthlyProcessorInterface
	seq       *models.Sequence
}

func (s *MonthlyProcessorSuite) SetupTest() {
	s.metrics, _ = newTestMetrics(s.T())
	s.processor = NewMonthlyProcessor(s.metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.seq = models.NewSequence(models.SequenceStart)
}

func TestMonthlyProcessorSuite(t *testing.T) {
	suite.Run(t, new(MonthlyProcessorSuite))
}

func (s *MonthlyProcessorSuite) accounts() []models.Account {
	return []models.Account{
		models.NewSavingsAccount("Juan", 1000000, models.WithSequence(s.seq)),
		models.NewCheckingAccount("Maria", 500000, models.CheckingTerms{OverdraftLimit: 200000, MaintenanceFee: 5000}, models.WithSequence(s.seq)),
		models.NewInvestmentAccount("Carlos", 5000000, models.WithSequence(s.seq), models.WithRateSource(models.FixedRate(0.10))),
	}
}

func (s *MonthlyProcessorSuite) TestProcess_AppliesPoliciesInOrder() {
	accounts := s.accounts()

	results := s.processor.Process(accounts)

	s.Require().Len(results, 3)

	s.Equal("Savings-1000", results[0].AccountID)
	s.Equal(models.AccountKindSavings, results[0].Kind)
	s.InDelta(20000, results[0].Interest, 1e-6)
	s.Zero(results[0].Fee)
	s.InDelta(1020000, results[0].Balance, 1e-6)

	s.Equal("Checking-1001", results[1].AccountID)
	s.Zero(results[1].Interest)
	s.Equal(5000.0, results[1].Fee)
	s.Equal(495000.0, results[1].Balance)

	s.Equal("Investment-1002", results[2].AccountID)
	s.InDelta(500000, results[2].Interest, 1e-6)
	s.InDelta(55000, results[2].Fee, 1e-6)
	s.InDelta(5445000, results[2].Balance, 1e-6)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.monthlyRunsTotal))
	s.Equal(3.0, testutil.ToFloat64(s.metrics.monthlyAccounts))
}

func (s *MonthlyProcessorSuite) TestProcess_ZeroResultsDoNotStopTheRun() {
	accounts := []models.Account{
		models.NewCheckingAccount("Low", 100, models.DefaultCheckingTerms(), models.WithSequence(s.seq)),
		models.NewSavingsAccount("Empty", 0, models.WithSequence(s.seq)),
		models.NewSavingsAccount("Full", 500, models.WithSequence(s.seq)),
	}

	results := s.processor.Process(accounts)

	s.Require().Len(results, 3)
	s.Zero(results[0].Fee)
	s.Equal(100.0, results[0].Balance)
	s.Zero(results[1].Interest)
	s.InDelta(10, results[2].Interest, 1e-9)
	s.Len(accounts[0].Transactions(), 1)
	s.Len(accounts[1].Transactions(), 1)
	s.Len(accounts[2].Transactions(), 2)
}

func (s *MonthlyProcessorSuite) TestProcess_Empty() {
	results := s.processor.Process(nil)

	s.Empty(results)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.monthlyRunsTotal))
}

func (s *MonthlyProcessorSuite) TestWriteReport() {
	results := []MonthlyResult{
		{AccountID: "Savings-1000", Interest: 20000, Balance: 1020000},
		{AccountID: "Checking-1001", Fee: 5000, Balance: 495000},
		{AccountID: "Checking-1002", Balance: -70000},
	}

	var buf bytes.Buffer
	s.Require().NoError(s.processor.WriteReport(&buf, results))

	want := "\n--- MONTHLY PROCESSING ---\n" +
		"\nProcessing Savings-1000:\n" +
		"  Interest/return applied: $20,000.00\n" +
		"  Final balance: $1,020,000.00\n" +
		"\nProcessing Checking-1001:\n" +
		"  Fee charged: $5,000.00\n" +
		"  Final balance: $495,000.00\n" +
		"\nProcessing Checking-1002:\n" +
		"  Final balance: $-70,000.00\n"
	s.Equal(want, buf.String())
}
