// Package resilience runs calls to flaky upstreams behind a circuit breaker
// with bounded retries and a fallback value.
package resilience

import (
	"sync"
	"time"
)

const (
	DefaultThreshold = 3
	DefaultCooldown  = 5 * time.Minute
)

// BreakerState is the breaker's full state. The zero value is closed.
type BreakerState struct {
	LastFailureTime     time.Time
	ConsecutiveFailures int
}

// Breaker opens after Threshold consecutive failures and stays open until
// Cooldown has passed since the most recent failure.
type Breaker struct {
	mu        sync.Mutex
	state     BreakerState
	threshold int
	cooldown  time.Duration
	now       func() time.Time
}

// NewBreaker builds a Breaker. Non-positive values select the defaults and a
// nil clock uses time.Now.
func NewBreaker(threshold int, cooldown time.Duration, now func() time.Time) *Breaker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if now == nil {
		now = time.Now
	}
	return &Breaker{threshold: threshold, cooldown: cooldown, now: now}
}

// Open reports whether calls should skip the primary operation.
func (b *Breaker) Open() bool {
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state.LastFailureTime.IsZero() || b.state.ConsecutiveFailures < b.threshold {
		return false
	}
	return b.now().Sub(b.state.LastFailureTime) < b.cooldown
}

// RecordFailure counts one failed call.
func (b *Breaker) RecordFailure() {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.state.LastFailureTime = b.now()
	b.state.ConsecutiveFailures++
	b.mu.Unlock()
}

// RecordSuccess closes the breaker.
func (b *Breaker) RecordSuccess() {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.state = BreakerState{}
	b.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (b *Breaker) Snapshot() BreakerState {
	if b == nil {
		return BreakerState{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
