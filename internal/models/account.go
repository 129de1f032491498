package models

import (
	"fmt"
	"time"
)

// AccountKind identifies an account variant
type AccountKind string

const (
	AccountKindSavings    AccountKind = "savings"
	AccountKindChecking   AccountKind = "checking"
	AccountKindInvestment AccountKind = "investment"
)

// Prefix returns the label used in account IDs for the kind
func (k AccountKind) Prefix() string {
	switch k {
	case AccountKindSavings:
		return "Savings"
	case AccountKindChecking:
		return "Checking"
	case AccountKindInvestment:
		return "Investment"
	default:
		return ""
	}
}

// IsValidAccountKind checks if the account kind is valid
func IsValidAccountKind(kind string) bool {
	switch AccountKind(kind) {
	case AccountKindSavings, AccountKindChecking, AccountKindInvestment:
		return true
	default:
		return false
	}
}

// Account is the behavior shared by every account variant.
//
// Fallible operations report failure through their return value and
// never mutate the account when they fail.
type Account interface {
	ID() string
	Holder() string
	Kind() AccountKind
	Balance() float64
	OpenedAt() time.Time
	Transactions() []Transaction

	Deposit(amount float64) bool
	Withdraw(amount float64) bool

	// ComputeInterest applies the variant's interest or return policy and
	// returns the amount applied, 0 when nothing was applied.
	ComputeInterest() float64
	// ApplyFee applies the variant's fee policy and returns the fee charged.
	ApplyFee() float64

	TransferTo(other Account, amount float64) bool
	Exceeds(other Account) bool
	String() string

	receiveTransfer(fromID string, amount float64) bool
}

// WithdrawalRule decides whether amount may leave an account holding balance.
// Amount is always positive when a rule is consulted.
type WithdrawalRule func(balance, amount float64) bool

// SufficientFunds allows withdrawals that keep the balance non-negative
func SufficientFunds(balance, amount float64) bool {
	return balance >= amount
}

// OverdraftUpTo allows withdrawals down to -limit
func OverdraftUpTo(limit float64) WithdrawalRule {
	return func(balance, amount float64) bool {
		return balance-amount >= -limit
	}
}

// Recorder receives every transaction appended to an account
type Recorder interface {
	Record(accountID string, tx Transaction)
}

// RecorderFunc adapts a function to the Recorder interface
type RecorderFunc func(accountID string, tx Transaction)

// Record calls f(accountID, tx)
func (f RecorderFunc) Record(accountID string, tx Transaction) {
	f(accountID, tx)
}

// MultiRecorder fans a transaction out to several recorders in order
type MultiRecorder []Recorder

// Record forwards tx to every non-nil recorder
func (m MultiRecorder) Record(accountID string, tx Transaction) {
	for _, r := range m {
		if r != nil {
			r.Record(accountID, tx)
		}
	}
}

type nopRecorder struct{}

func (nopRecorder) Record(string, Transaction) {}

// Option configures an account at construction
type Option func(*accountOptions)

type accountOptions struct {
	sequence *Sequence
	recorder Recorder
	clock    func() time.Time
	rates    RateSource
}

// WithSequence draws the account number from seq instead of the process-wide sequence
func WithSequence(seq *Sequence) Option {
	return func(o *accountOptions) {
		o.sequence = seq
	}
}

// WithRecorder sends every transaction of the account to r
func WithRecorder(r Recorder) Option {
	return func(o *accountOptions) {
		o.recorder = r
	}
}

// WithClock overrides the time source used for timestamps
func WithClock(clock func() time.Time) Option {
	return func(o *accountOptions) {
		o.clock = clock
	}
}

// WithRateSource sets the return-rate source of an investment account.
// It has no effect on other variants.
func WithRateSource(src RateSource) Option {
	return func(o *accountOptions) {
		o.rates = src
	}
}

func buildOptions(opts []Option) accountOptions {
	o := accountOptions{
		sequence: defaultSequence,
		recorder: nopRecorder{},
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sequence == nil {
		o.sequence = defaultSequence
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	return o
}

// baseAccount holds the state and primitives shared by all variants
type baseAccount struct {
	id           string
	holder       string
	kind         AccountKind
	balance      float64
	openedAt     time.Time
	transactions []Transaction

	allowWithdraw WithdrawalRule
	recorder      Recorder
	clock         func() time.Time
}

func newBaseAccount(kind AccountKind, holder string, initialBalance float64, rule WithdrawalRule, o accountOptions) *baseAccount {
	b := &baseAccount{
		id:            fmt.Sprintf("%s-%d", kind.Prefix(), o.sequence.Next()),
		holder:        holder,
		kind:          kind,
		openedAt:      o.clock(),
		allowWithdraw: rule,
		recorder:      o.recorder,
		clock:         o.clock,
	}
	b.apply(TransactionTypeOpening, DescriptionOpening, initialBalance)
	return b
}

// apply records the transaction against the current balance, then moves the balance
func (b *baseAccount) apply(txType TransactionType, description string, amount float64) {
	tx := Transaction{
		Reference:     GenerateTransactionReference(),
		Timestamp:     b.clock(),
		Type:          txType,
		Description:   description,
		Amount:        amount,
		BalanceBefore: b.balance,
	}
	b.transactions = append(b.transactions, tx)
	b.balance += amount
	b.recorder.Record(b.id, tx)
}

// ID returns the account identifier
func (b *baseAccount) ID() string {
	return b.id
}

// Holder returns the account holder name
func (b *baseAccount) Holder() string {
	return b.holder
}

// Kind returns the account variant
func (b *baseAccount) Kind() AccountKind {
	return b.kind
}

// Balance returns the current balance
func (b *baseAccount) Balance() float64 {
	return b.balance
}

// OpenedAt returns the opening timestamp
func (b *baseAccount) OpenedAt() time.Time {
	return b.openedAt
}

// Transactions returns a copy of the transaction history, oldest first
func (b *baseAccount) Transactions() []Transaction {
	out := make([]Transaction, len(b.transactions))
	copy(out, b.transactions)
	return out
}

// Deposit adds a positive amount to the balance
func (b *baseAccount) Deposit(amount float64) bool {
	if !(amount > 0) {
		return false
	}
	b.apply(TransactionTypeDeposit, DescriptionDeposit, amount)
	return true
}

// Withdraw removes a positive amount if the account's withdrawal rule allows it
func (b *baseAccount) Withdraw(amount float64) bool {
	if !b.canWithdraw(amount) {
		return false
	}
	b.apply(TransactionTypeWithdrawal, DescriptionWithdrawal, -amount)
	return true
}

func (b *baseAccount) canWithdraw(amount float64) bool {
	return amount > 0 && b.allowWithdraw(b.balance, amount)
}

// TransferTo moves amount from this account to other.
//
// The sending leg follows this account's withdrawal rule. If the receiving
// leg is refused, the sent amount is credited back with a reversal entry
// and the transfer reports failure. The two legs are not atomic: a crash
// between them leaves the amount debited here and not credited there.
func (b *baseAccount) TransferTo(other Account, amount float64) bool {
	if other == nil || other.ID() == b.id || !b.canWithdraw(amount) {
		return false
	}

	b.apply(TransactionTypeTransferOut, TransferSentDescription(other.ID()), -amount)

	if !other.receiveTransfer(b.id, amount) {
		b.apply(TransactionTypeReversal, DescriptionTransferReversed, amount)
		return false
	}
	return true
}

func (b *baseAccount) receiveTransfer(fromID string, amount float64) bool {
	if !(amount > 0) {
		return false
	}
	b.apply(TransactionTypeTransferIn, TransferReceivedDescription(fromID), amount)
	return true
}

// Exceeds reports whether this account holds strictly more than other
func (b *baseAccount) Exceeds(other Account) bool {
	if other == nil {
		return false
	}
	return b.balance > other.Balance()
}

// String renders the fields common to every variant
func (b *baseAccount) String() string {
	return fmt.Sprintf("%s: Holder: %s, Balance: $%s", b.id, b.holder, FormatMoney(b.balance))
}
