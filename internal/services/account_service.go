package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bank-accounts/internal/config"
	"bank-accounts/internal/dto"
	"bank-accounts/internal/models"
	"bank-accounts/internal/repositories"
	"bank-accounts/internal/validation"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrSameAccount     = errors.New("source and destination must be different accounts")
	ErrNotInvestment   = errors.New("account is not an investment account")
	ErrInvalidRequest  = errors.New("invalid request")
)

// CompareResult holds two accounts and whether the first holds strictly more
type CompareResult struct {
	First        models.Account
	Second       models.Account
	FirstExceeds bool
}

// Equal reports whether both balances are the same
func (r CompareResult) Equal() bool {
	return !r.FirstExceeds && !r.Second.Exceeds(r.First)
}

// Statement is the transaction history of one account
type Statement struct {
	Account      models.Account
	Transactions []models.Transaction
	// Journaled is the number of entries mirrored in the journal, -1 when no journal is configured
	Journaled int64
}

type accountService struct {
	accounts  []models.Account
	terms     config.AccountsConfig
	rates     models.RateSource
	recorder  models.Recorder
	metrics   MetricsRecorderInterface
	processor MonthlyProcessorInterface
	journal   repositories.JournalRepositoryInterface
	validator *validation.Validator
	logger    *slog.Logger
	opts      []models.Option
}

// NewAccountService creates the session's account service. journal may be nil
// when no journal database is configured; opts are applied to every account created.
func NewAccountService(
	terms config.AccountsConfig,
	rates models.RateSource,
	recorder models.Recorder,
	metrics MetricsRecorderInterface,
	processor MonthlyProcessorInterface,
	journal repositories.JournalRepositoryInterface,
	logger *slog.Logger,
	opts ...models.Option,
) AccountServiceInterface {
	return &accountService{
		terms:     terms,
		rates:     rates,
		recorder:  recorder,
		metrics:   metrics,
		processor: processor,
		journal:   journal,
		validator: validation.GetValidator(),
		logger:    logger,
		opts:      opts,
	}
}

func (s *accountService) accountOptions(extra ...models.Option) []models.Option {
	opts := make([]models.Option, 0, len(s.opts)+len(extra)+1)
	opts = append(opts, models.WithRecorder(s.recorder))
	opts = append(opts, s.opts...)
	return append(opts, extra...)
}

func (s *accountService) checkingTerms(overdraft *float64) models.CheckingTerms {
	terms := models.CheckingTerms{
		OverdraftLimit: s.terms.OverdraftLimit,
		MaintenanceFee: s.terms.MaintenanceFee,
	}
	if overdraft != nil {
		terms.OverdraftLimit = *overdraft
	}
	return terms
}

// CreateAccount validates the request and opens a new account at the end of the list
func (s *accountService) CreateAccount(req dto.CreateAccountRequest) (models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	kind := models.AccountKind(strings.ToLower(req.Kind))
	holder := strings.TrimSpace(req.Holder)

	return s.open(kind, holder, req.InitialBalance, req.OverdraftLimit), nil
}

func (s *accountService) open(kind models.AccountKind, holder string, initial float64, overdraft *float64) models.Account {
	var account models.Account
	switch kind {
	case models.AccountKindChecking:
		account = models.NewCheckingAccount(holder, initial, s.checkingTerms(overdraft), s.accountOptions()...)
	case models.AccountKindInvestment:
		var extra []models.Option
		if s.rates != nil {
			extra = append(extra, models.WithRateSource(s.rates))
		}
		account = models.NewInvestmentAccount(holder, initial, s.accountOptions(extra...)...)
	default:
		account = models.NewSavingsAccount(holder, initial, s.accountOptions()...)
	}

	s.accounts = append(s.accounts, account)
	s.metrics.RecordAccountOpened(kind)
	s.logger.Debug("account opened",
		slog.String("event_type", "account_opened"),
		slog.String("account_id", account.ID()),
		slog.String("kind", string(kind)),
	)

	return account
}

// SeedDemoAccounts opens the three sample accounts available at startup
func (s *accountService) SeedDemoAccounts() []models.Account {
	overdraft := 200000.0
	return []models.Account{
		s.open(models.AccountKindSavings, "Juan Pérez", 1000000, nil),
		s.open(models.AccountKindChecking, "María García", 500000, &overdraft),
		s.open(models.AccountKindInvestment, "Carlos López", 5000000, nil),
	}
}

// Accounts returns the accounts in creation order
func (s *accountService) Accounts() []models.Account {
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Get returns the account at index
func (s *accountService) Get(index int) (models.Account, error) {
	if index < 0 || index >= len(s.accounts) {
		return nil, fmt.Errorf("%w: index %d", ErrAccountNotFound, index)
	}
	return s.accounts[index], nil
}

func (s *accountService) Deposit(index int, amount float64) (bool, error) {
	account, err := s.Get(index)
	if err != nil {
		return false, err
	}
	return account.Deposit(amount), nil
}

func (s *accountService) Withdraw(index int, amount float64) (bool, error) {
	account, err := s.Get(index)
	if err != nil {
		return false, err
	}
	return account.Withdraw(amount), nil
}

// Transfer moves money between two distinct accounts
func (s *accountService) Transfer(req dto.TransferRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	from, err := s.Get(req.FromIndex)
	if err != nil {
		return false, err
	}
	to, err := s.Get(req.ToIndex)
	if err != nil {
		return false, err
	}
	if req.FromIndex == req.ToIndex {
		return false, ErrSameAccount
	}

	ok := from.TransferTo(to, req.Amount)

	status := TransferStatusRejected
	if ok {
		status = TransferStatusCompleted
	}
	s.metrics.RecordTransfer(status, req.Amount)

	return ok, nil
}

func (s *accountService) Compare(first, second int) (CompareResult, error) {
	a, err := s.Get(first)
	if err != nil {
		return CompareResult{}, err
	}
	b, err := s.Get(second)
	if err != nil {
		return CompareResult{}, err
	}

	return CompareResult{
		First:        a,
		Second:       b,
		FirstExceeds: a.Exceeds(b),
	}, nil
}

func (s *accountService) AllocatePortfolio(req dto.PortfolioRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	account, err := s.Get(req.AccountIndex)
	if err != nil {
		return false, err
	}

	investment, ok := account.(*models.InvestmentAccount)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotInvestment, account.ID())
	}

	return investment.AllocatePortfolio(req.Stocks, req.Bonds, req.Funds), nil
}

// RunMonthly applies the monthly batch to every account
func (s *accountService) RunMonthly() []MonthlyResult {
	return s.processor.Process(s.Accounts())
}

func (s *accountService) Statement(index int) (*Statement, error) {
	account, err := s.Get(index)
	if err != nil {
		return nil, err
	}

	statement := &Statement{
		Account:      account,
		Transactions: account.Transactions(),
		Journaled:    -1,
	}

	if s.journal != nil {
		count, err := s.journal.CountByAccount(account.ID())
		if err != nil {
			s.logger.Warn("failed to count journal entries",
				slog.String("account_id", account.ID()),
				slog.String("error", err.Error()),
			)
		} else {
			statement.Journaled = count
		}
	}

	return statement, nil
}
