package services

import (
	"errors"
	"sync"
	"time"

	"client-directory/internal/config"
	"client-directory/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

// CircuitBreakerConfigFrom maps the environment config, falling back to defaults for unset values
func CircuitBreakerConfigFrom(cfg config.CircuitBreakerConfig) CircuitBreakerConfig {
	out := DefaultCircuitBreakerConfig()
	if cfg.MaxFailures > 0 {
		out.MaxFailures = cfg.MaxFailures
	}
	if cfg.ResetTimeout > 0 {
		out.ResetTimeout = cfg.ResetTimeout
	}
	if cfg.HalfOpenSuccesses > 0 {
		out.HalfOpenMaxSucc = cfg.HalfOpenSuccesses
	}
	return out
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// StateChangeFunc is called after every transition, outside the breaker lock
type StateChangeFunc func(from, to models.CircuitBreakerState)

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	onStateChange     StateChangeFunc
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// OnStateChange registers fn to observe transitions
func (cb *CircuitBreaker) OnStateChange(fn StateChangeFunc) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onStateChange = fn
}

// Allow returns ErrCircuitBreakerOpen while the breaker rejects calls
func (cb *CircuitBreaker) Allow() error {
	if cb.IsOpen() {
		return ErrCircuitBreakerOpen
	}
	return nil
}

func (cb *CircuitBreaker) IsOpen() bool {
	return cb.GetState() == StateOpen
}

// GetState reports the current state. An open breaker whose reset timeout has
// elapsed moves to half-open here, so readers that never fetch (health checks)
// see the recovery too.
func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.Lock()
	from := cb.state

	if cb.state == StateOpen && cb.shouldTransitionToHalfOpen() {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
	}
	to := cb.state
	notify := cb.onStateChange
	cb.mu.Unlock()

	cb.notify(notify, from, to)
	return to
}

func (cb *CircuitBreaker) shouldTransitionToHalfOpen() bool {
	return cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	from := cb.state

	if cb.state == StateHalfOpen {
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.transitionToClosed()
		}
	} else if cb.state == StateClosed {
		cb.failures = 0
	}
	to := cb.state
	notify := cb.onStateChange
	cb.mu.Unlock()

	cb.notify(notify, from, to)
}

func (cb *CircuitBreaker) transitionToClosed() {
	cb.state = StateClosed
	cb.failures = 0
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	from := cb.state

	cb.lastFailureTime = cb.now()

	if cb.state == StateHalfOpen {
		cb.transitionToOpen()
	} else if cb.state == StateClosed {
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.transitionToOpen()
		}
	}
	to := cb.state
	notify := cb.onStateChange
	cb.mu.Unlock()

	cb.notify(notify, from, to)
}

func (cb *CircuitBreaker) transitionToOpen() {
	cb.state = StateOpen
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) notify(fn StateChangeFunc, from, to models.CircuitBreakerState) {
	if fn != nil && from != to {
		fn(from, to)
	}
}

// GetFailureCount is the number of consecutive failures while closed
func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
