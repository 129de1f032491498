package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(maxFailures, halfOpen int) (*CircuitBreaker, *time.Time) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     maxFailures,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: halfOpen,
	})
	cb.clock = func() time.Time { return now }
	return cb, &now
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb, _ := newTestBreaker(3, 1)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 2, cb.failures)

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, StateOpen, cb.GetState())
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _ := newTestBreaker(2, 1)

	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.False(t, cb.IsOpen())
	assert.Equal(t, 1, cb.failures)
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	cb, now := newTestBreaker(1, 2)
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	*now = now.Add(time.Minute + time.Second)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.GetState())
	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, now := newTestBreaker(1, 1)
	cb.RecordFailure()
	*now = now.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_ZeroConfigClamped(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{})
	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.GetState())

	assert.Equal(t, "half_open", StateHalfOpen.String())
	assert.Equal(t, "unknown", BreakerState(9).String())
}

func TestNewJournalBreaker(t *testing.T) {
	defaults := DefaultCircuitBreakerConfig()

	tests := []struct {
		name         string
		maxFailures  int
		resetTimeout time.Duration
		want         CircuitBreakerConfig
	}{
		{
			name:         "configured values",
			maxFailures:  2,
			resetTimeout: 10 * time.Second,
			want:         CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: 10 * time.Second, HalfOpenMaxSucc: 1},
		},
		{
			name: "zero values fall back to defaults",
			want: CircuitBreakerConfig{MaxFailures: defaults.MaxFailures, ResetTimeout: defaults.ResetTimeout, HalfOpenMaxSucc: 1},
		},
		{
			name:         "negative values fall back to defaults",
			maxFailures:  -3,
			resetTimeout: -time.Second,
			want:         CircuitBreakerConfig{MaxFailures: defaults.MaxFailures, ResetTimeout: defaults.ResetTimeout, HalfOpenMaxSucc: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := NewJournalBreaker(tt.maxFailures, tt.resetTimeout)

			assert.Equal(t, tt.want, cb.config)
			assert.Equal(t, StateClosed, cb.GetState())
		})
	}
}

func TestNewJournalBreaker_ClosesAfterOneTrialWrite(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewJournalBreaker(1, time.Minute)
	cb.clock = func() time.Time { return now }

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	now = now.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())
	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())
}
