package models

// SavingsInterestRate is the annual rate credited by ComputeInterest
const SavingsInterestRate = 0.02

// SavingsAccount earns a fixed interest rate and charges no fees
type SavingsAccount struct {
	*baseAccount
}

// NewSavingsAccount opens a savings account with the given initial balance
func NewSavingsAccount(holder string, initialBalance float64, opts ...Option) *SavingsAccount {
	o := buildOptions(opts)
	return &SavingsAccount{
		baseAccount: newBaseAccount(AccountKindSavings, holder, initialBalance, SufficientFunds, o),
	}
}

// InterestRate returns the annual interest rate
func (a *SavingsAccount) InterestRate() float64 {
	return SavingsInterestRate
}

// ComputeInterest credits balance x SavingsInterestRate and returns it
func (a *SavingsAccount) ComputeInterest() float64 {
	interest := a.balance * SavingsInterestRate
	if interest == 0 {
		return 0
	}
	a.apply(TransactionTypeInterest, DescriptionInterest, interest)
	return interest
}

// ApplyFee never charges a savings account
func (a *SavingsAccount) ApplyFee() float64 {
	return 0
}

func (a *SavingsAccount) String() string {
	return a.baseAccount.String() + " (Interest: " + FormatRate(SavingsInterestRate) + ")"
}
