package services

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"bank-accounts/internal/models"
)

// MonthlyResult is the outcome of the monthly batch for one account
type MonthlyResult struct {
	AccountID string             `json:"account_id"`
	Kind      models.AccountKind `json:"kind"`
	Interest  float64            `json:"interest"`
	Fee       float64            `json:"fee"`
	Balance   float64            `json:"balance"`
}

type monthlyProcessor struct {
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewMonthlyProcessor(metrics MetricsRecorderInterface, logger *slog.Logger) MonthlyProcessorInterface {
	return &monthlyProcessor{
		metrics: metrics,
		logger:  logger,
	}
}

// Process applies interest and then fees to every account in order.
// Each account is handled independently; a zero result never stops the run.
func (p *monthlyProcessor) Process(accounts []models.Account) []MonthlyResult {
	start := time.Now()
	results := make([]MonthlyResult, 0, len(accounts))

	var totalInterest, totalFees float64
	for _, account := range accounts {
		interest := account.ComputeInterest()
		fee := account.ApplyFee()

		totalInterest += interest
		totalFees += fee

		results = append(results, MonthlyResult{
			AccountID: account.ID(),
			Kind:      account.Kind(),
			Interest:  interest,
			Fee:       fee,
			Balance:   account.Balance(),
		})
	}

	duration := time.Since(start)
	p.metrics.RecordMonthlyRun(len(accounts), totalInterest, totalFees, duration)
	p.logger.Debug("monthly run completed",
		slog.String("event_type", "monthly_run_completed"),
		slog.Int("accounts", len(accounts)),
		slog.Float64("interest", totalInterest),
		slog.Float64("fees", totalFees),
		slog.Int64("duration_us", duration.Microseconds()),
	)

	return results
}

// WriteReport prints one block per account. Interest and fee lines appear
// only when non-zero; the final balance is always shown.
func (p *monthlyProcessor) WriteReport(w io.Writer, results []MonthlyResult) error {
	if _, err := fmt.Fprintln(w, "\n--- MONTHLY PROCESSING ---"); err != nil {
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(w, "\nProcessing %s:\n", r.AccountID); err != nil {
			return err
		}
		if r.Interest != 0 {
			if _, err := fmt.Fprintf(w, "  Interest/return applied: $%s\n", models.FormatMoney(r.Interest)); err != nil {
				return err
			}
		}
		if r.Fee != 0 {
			if _, err := fmt.Fprintf(w, "  Fee charged: $%s\n", models.FormatMoney(r.Fee)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  Final balance: $%s\n", models.FormatMoney(r.Balance)); err != nil {
			return err
		}
	}

	return nil
}
