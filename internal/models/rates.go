package models

import (
	"math/rand"
	"sync"
)

// Bounds of the simulated annual return of an investment account
const (
	MinInvestmentReturn = -0.05
	MaxInvestmentReturn = 0.15
)

// RateSource supplies the annual return rate applied by an investment account
type RateSource interface {
	Rate() float64
}

// FixedRate always returns the same rate
type FixedRate float64

// Rate returns r
func (r FixedRate) Rate() float64 {
	return float64(r)
}

// UniformRate draws rates uniformly from the closed interval [Min, Max]
type UniformRate struct {
	Min float64
	Max float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniformRate creates a source over [MinInvestmentReturn, MaxInvestmentReturn] seeded with seed
func NewUniformRate(seed int64) *UniformRate {
	return NewUniformRateBetween(MinInvestmentReturn, MaxInvestmentReturn, seed)
}

// NewUniformRateBetween creates a source over [min, max] seeded with seed
func NewUniformRateBetween(min, max float64, seed int64) *UniformRate {
	if min > max {
		min, max = max, min
	}
	return &UniformRate{
		Min: min,
		Max: max,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// unitSteps is the number of equal steps the unit interval is split into;
// drawing from [0, unitSteps] inclusive makes both bounds reachable.
const unitSteps = 1 << 53

// Rate returns the next rate in [Min, Max]
func (u *UniformRate) Rate() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	unit := float64(u.rng.Int63n(unitSteps+1)) / unitSteps
	return u.Min + unit*(u.Max-u.Min)
}
