package services

import (
	"math"
	"time"

	"bank-accounts/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	TransferStatusCompleted = "completed"
	TransferStatusRejected  = "rejected"
)

type PrometheusMetrics struct {
	transactionsTotal  *prometheus.CounterVec
	transactionAmount  *prometheus.HistogramVec
	accountsOpened     *prometheus.CounterVec
	transfersTotal     *prometheus.CounterVec
	transferAmount     prometheus.Histogram
	monthlyRunsTotal   prometheus.Counter
	monthlyRunDuration prometheus.Histogram
	monthlyAccounts    prometheus.Gauge
	monthlyInterest    prometheus.Counter
	monthlyFees        prometheus.Counter
}

// NewPrometheusMetrics registers the account metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_transactions_total",
				Help: "Total number of account transactions recorded",
			},
			[]string{"type"},
		),
		transactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bank_transaction_amount",
				Help:    "Absolute amount of account transactions",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8),
			},
			[]string{"type"},
		),
		accountsOpened: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_accounts_opened_total",
				Help: "Total number of accounts opened",
			},
			[]string{"kind"},
		),
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_transfers_total",
				Help: "Total number of transfers attempted",
			},
			[]string{"status"},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_transfer_amount",
				Help:    "Amount of completed transfers",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8),
			},
		),
		monthlyRunsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bank_monthly_runs_total",
				Help: "Total number of monthly batch runs",
			},
		),
		monthlyRunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_monthly_run_duration_milliseconds",
				Help:    "Monthly batch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
		),
		monthlyAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_monthly_run_accounts",
				Help: "Number of accounts processed by the last monthly run",
			},
		),
		monthlyInterest: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bank_monthly_interest_applied_total",
				Help: "Net interest and investment return applied by monthly runs",
			},
		),
		monthlyFees: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bank_monthly_fees_charged_total",
				Help: "Fees charged by monthly runs",
			},
		),
	}
}

// Record implements models.Recorder
func (m *PrometheusMetrics) Record(_ string, tx models.Transaction) {
	m.transactionsTotal.WithLabelValues(string(tx.Type)).Inc()
	m.transactionAmount.WithLabelValues(string(tx.Type)).Observe(math.Abs(tx.Amount))
}

func (m *PrometheusMetrics) RecordAccountOpened(kind models.AccountKind) {
	m.accountsOpened.WithLabelValues(string(kind)).Inc()
}

func (m *PrometheusMetrics) RecordTransfer(status string, amount float64) {
	m.transfersTotal.WithLabelValues(status).Inc()
	if status == TransferStatusCompleted {
		m.transferAmount.Observe(amount)
	}
}

// RecordMonthlyRun counts a batch run. Negative investment returns make the
// net interest negative; counters only grow, so only positive totals are added.
func (m *PrometheusMetrics) RecordMonthlyRun(accounts int, interest, fees float64, duration time.Duration) {
	m.monthlyRunsTotal.Inc()
	m.monthlyRunDuration.Observe(float64(duration.Microseconds()) / 1000)
	m.monthlyAccounts.Set(float64(accounts))
	if interest > 0 {
		m.monthlyInterest.Add(interest)
	}
	if fees > 0 {
		m.monthlyFees.Add(fees)
	}
}
