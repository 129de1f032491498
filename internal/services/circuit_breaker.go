package services

import (
	"sync"
	"time"
)

// BreakerState is the state of a CircuitBreaker
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker stops calls to a failing dependency for ResetTimeout after
// MaxFailures consecutive failures, then lets trial calls through.
type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	clock             func() time.Time
}

// NewJournalBreaker builds the breaker guarding journal writes. Non-positive
// settings keep the default, and one successful trial write closes it again.
func NewJournalBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	config := DefaultCircuitBreakerConfig()
	if maxFailures > 0 {
		config.MaxFailures = maxFailures
	}
	if resetTimeout > 0 {
		config.ResetTimeout = resetTimeout
	}
	config.HalfOpenMaxSucc = 1
	return NewCircuitBreaker(config)
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	if config.MaxFailures <= 0 {
		config.MaxFailures = 1
	}
	if config.HalfOpenMaxSucc <= 0 {
		config.HalfOpenMaxSucc = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		clock:  time.Now,
	}
}

// IsOpen reports whether calls must be skipped. An open breaker whose reset
// timeout elapsed moves to half-open and allows the call.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.clock().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
		return false
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.transitionToClosed()
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.clock()

	switch cb.state {
	case StateHalfOpen:
		cb.transitionToOpen()
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.transitionToOpen()
		}
	}
}

func (cb *CircuitBreaker) transitionToClosed() {
	cb.state = StateClosed
	cb.failures = 0
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) transitionToOpen() {
	cb.state = StateOpen
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) GetState() BreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}
