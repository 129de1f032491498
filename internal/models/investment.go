package models

// ManagementFeeRate is the share of the balance charged by ApplyFee
const ManagementFeeRate = 0.01

// Bucket names a portfolio category
type Bucket string

const (
	BucketStocks Bucket = "stocks"
	BucketBonds  Bucket = "bonds"
	BucketFunds  Bucket = "funds"
)

// Buckets lists the portfolio categories in display order
var Buckets = []Bucket{BucketStocks, BucketBonds, BucketFunds}

// InvestmentAccount earns a variable return, pays a management fee and
// tracks money moved into its portfolio buckets
type InvestmentAccount struct {
	*baseAccount
	portfolio  map[Bucket]float64
	rates      RateSource
	lastReturn *float64
}

// NewInvestmentAccount opens an investment account.
// Without WithRateSource, returns are drawn from an unseeded uniform source.
func NewInvestmentAccount(holder string, initialBalance float64, opts ...Option) *InvestmentAccount {
	o := buildOptions(opts)
	rates := o.rates
	if rates == nil {
		rates = NewUniformRate(o.clock().UnixNano())
	}
	return &InvestmentAccount{
		baseAccount: newBaseAccount(AccountKindInvestment, holder, initialBalance, SufficientFunds, o),
		portfolio: map[Bucket]float64{
			BucketStocks: 0,
			BucketBonds:  0,
			BucketFunds:  0,
		},
		rates: rates,
	}
}

// Portfolio returns a copy of the amount allocated to each bucket
func (a *InvestmentAccount) Portfolio() map[Bucket]float64 {
	out := make(map[Bucket]float64, len(a.portfolio))
	for k, v := range a.portfolio {
		out[k] = v
	}
	return out
}

// Allocated returns the amount held in bucket
func (a *InvestmentAccount) Allocated(bucket Bucket) float64 {
	return a.portfolio[bucket]
}

// LastReturnRate returns the most recent annual return rate and whether one was computed
func (a *InvestmentAccount) LastReturnRate() (float64, bool) {
	if a.lastReturn == nil {
		return 0, false
	}
	return *a.lastReturn, true
}

// ComputeInterest draws a return rate and applies it to the balance.
// The result may be negative.
func (a *InvestmentAccount) ComputeInterest() float64 {
	rate := a.rates.Rate()
	a.lastReturn = &rate

	gain := a.balance * rate
	if gain == 0 {
		return 0
	}
	a.apply(TransactionTypeReturn, DescriptionInvestmentReturn, gain)
	return gain
}

// ApplyFee charges ManagementFeeRate of the balance when the balance covers it
func (a *InvestmentAccount) ApplyFee() float64 {
	fee := a.balance * ManagementFeeRate
	if !(fee > 0) || !(a.balance >= fee) {
		return 0
	}
	a.apply(TransactionTypeFee, DescriptionManagementFee, -fee)
	return fee
}

// AllocatePortfolio moves money from the balance into the three buckets.
// It fails without changes if any amount is negative or the total exceeds the balance.
func (a *InvestmentAccount) AllocatePortfolio(stocks, bonds, funds float64) bool {
	// Written positively so NaN is refused along with negatives.
	if !(stocks >= 0) || !(bonds >= 0) || !(funds >= 0) {
		return false
	}
	total := stocks + bonds + funds
	if !(total <= a.balance) {
		return false
	}

	a.portfolio[BucketStocks] += stocks
	a.portfolio[BucketBonds] += bonds
	a.portfolio[BucketFunds] += funds
	a.apply(TransactionTypePortfolio, DescriptionPortfolio, -total)
	return true
}

func (a *InvestmentAccount) String() string {
	rate, ok := a.LastReturnRate()
	if !ok {
		return a.baseAccount.String()
	}
	return a.baseAccount.String() + " (Return: " + FormatSignedRate(rate) + ")"
}
