package models

// Default checking account terms
const (
	DefaultOverdraftLimit = 100000.0
	DefaultMaintenanceFee = 5000.0
)

// CheckingTerms are the per-account limits of a checking account
type CheckingTerms struct {
	OverdraftLimit float64
	MaintenanceFee float64
}

// DefaultCheckingTerms returns the terms used when none are configured
func DefaultCheckingTerms() CheckingTerms {
	return CheckingTerms{
		OverdraftLimit: DefaultOverdraftLimit,
		MaintenanceFee: DefaultMaintenanceFee,
	}
}

// CheckingAccount allows an overdraft and charges a monthly maintenance fee.
// It earns no interest.
type CheckingAccount struct {
	*baseAccount
	terms CheckingTerms
}

// NewCheckingAccount opens a checking account with the given terms
func NewCheckingAccount(holder string, initialBalance float64, terms CheckingTerms, opts ...Option) *CheckingAccount {
	o := buildOptions(opts)
	return &CheckingAccount{
		baseAccount: newBaseAccount(AccountKindChecking, holder, initialBalance, OverdraftUpTo(terms.OverdraftLimit), o),
		terms:       terms,
	}
}

// OverdraftLimit returns how far below zero the balance may go
func (a *CheckingAccount) OverdraftLimit() float64 {
	return a.terms.OverdraftLimit
}

// MaintenanceFee returns the fee charged by ApplyFee
func (a *CheckingAccount) MaintenanceFee() float64 {
	return a.terms.MaintenanceFee
}

// InOverdraft returns true if the balance is negative
func (a *CheckingAccount) InOverdraft() bool {
	return a.balance < 0
}

// ComputeInterest always returns 0
func (a *CheckingAccount) ComputeInterest() float64 {
	return 0
}

// ApplyFee charges the maintenance fee when the balance covers it in full.
// Otherwise the fee is skipped for the month.
func (a *CheckingAccount) ApplyFee() float64 {
	fee := a.terms.MaintenanceFee
	if !(fee > 0) || !(a.balance >= fee) {
		return 0
	}
	a.apply(TransactionTypeFee, DescriptionMaintenanceFee, -fee)
	return fee
}

func (a *CheckingAccount) String() string {
	if a.InOverdraft() {
		return a.baseAccount.String() + " (Overdraft in use)"
	}
	return a.baseAccount.String()
}
