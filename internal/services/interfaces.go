package services

import (
	"io"
	"time"

	"bank-accounts/internal/dto"
	"bank-accounts/internal/models"
)

// MetricsRecorderInterface defines the contract for recording account metrics.
// It receives every transaction as a models.Recorder.
type MetricsRecorderInterface interface {
	models.Recorder
	RecordAccountOpened(kind models.AccountKind)
	RecordTransfer(status string, amount float64)
	RecordMonthlyRun(accounts int, interest, fees float64, duration time.Duration)
}

// MonthlyProcessorInterface defines the monthly interest and fee batch
type MonthlyProcessorInterface interface {
	Process(accounts []models.Account) []MonthlyResult
	WriteReport(w io.Writer, results []MonthlyResult) error
}

// AccountServiceInterface defines the operations offered over the session's accounts
type AccountServiceInterface interface {
	CreateAccount(req dto.CreateAccountRequest) (models.Account, error)
	SeedDemoAccounts() []models.Account
	Accounts() []models.Account
	Get(index int) (models.Account, error)
	Deposit(index int, amount float64) (bool, error)
	Withdraw(index int, amount float64) (bool, error)
	Transfer(req dto.TransferRequest) (bool, error)
	Compare(first, second int) (CompareResult, error)
	AllocatePortfolio(req dto.PortfolioRequest) (bool, error)
	RunMonthly() []MonthlyResult
	Statement(index int) (*Statement, error)
}

// SnapshotReaderInterface gives concurrent readers the last published account state
type SnapshotReaderInterface interface {
	List(kind string) ([]dto.AccountView, time.Time)
	Find(id string) (dto.AccountView, bool)
}

// CircuitBreakerInterface guards calls to an unreliable dependency
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() BreakerState
}
