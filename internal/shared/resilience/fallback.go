package resilience

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"annadata-backend/internal/shared/telemetry"
)

const (
	DefaultMaxRetries = 2
	DefaultBaseDelay  = time.Second
)

// ErrBreakerOpen is reported in Outcome.Err when the primary was skipped.
var ErrBreakerOpen = errors.New("circuit breaker open")

// Source names which branch produced a WithFallback result.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Policy configures WithFallback. The zero value runs the primary once with
// no breaker.
type Policy struct {
	Name       string
	Breaker    *Breaker
	MaxRetries int
	BaseDelay  time.Duration
	Retryable  func(error) bool
	Sleep      func(context.Context, time.Duration) error
}

// DefaultPolicy returns the policy used for AI calls: two retries with
// exponential backoff starting at one second.
func DefaultPolicy(name string, breaker *Breaker) Policy {
	return Policy{
		Name:       name,
		Breaker:    breaker,
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
	}
}

// Outcome describes how a WithFallback call was answered.
type Outcome struct {
	Source   Source
	Attempts int
	Err      error
}

// Fallback reports whether the fallback value was returned.
func (o Outcome) Fallback() bool {
	return o.Source == SourceFallback
}

// Reason is a short label for metrics: "", "breaker_open", "canceled" or "error".
func (o Outcome) Reason() string {
	switch {
	case o.Source == SourcePrimary:
		return ""
	case errors.Is(o.Err, ErrBreakerOpen):
		return "breaker_open"
	case errors.Is(o.Err, context.Canceled), errors.Is(o.Err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

// WithFallback runs primary under the policy and returns fallback() when the
// breaker is open or every attempt failed. A success closes the breaker; a
// call that exhausts its attempts counts as one breaker failure unless the
// caller's context ended first.
func WithFallback[T any](ctx context.Context, p Policy, primary func(context.Context) (T, error), fallback func() T) (T, Outcome) {
	if p.Breaker.Open() {
		telemetry.Warn("resilience.breaker_open", map[string]any{
			"name":                 p.Name,
			"consecutive_failures": p.Breaker.Snapshot().ConsecutiveFailures,
		})
		return fallback(), Outcome{Source: SourceFallback, Err: ErrBreakerOpen}
	}

	retryable := p.Retryable
	if retryable == nil {
		retryable = IsRetryable
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}

	var lastErr error
	attempts := 0
	for attempt := 0; attempt <= retries; attempt++ {
		attempts++
		val, err := primary(ctx)
		if err == nil {
			p.Breaker.RecordSuccess()
			return val, Outcome{Source: SourcePrimary, Attempts: attempts}
		}
		lastErr = err
		if ctxErr := ctx.Err(); ctxErr != nil {
			lastErr = fmt.Errorf("%w: %w", ctxErr, err)
			break
		}
		if !retryable(err) || attempt == retries {
			break
		}

		delay := p.BaseDelay << attempt
		telemetry.Warn("resilience.retry", map[string]any{
			"name":     p.Name,
			"attempt":  attempt + 1,
			"delay_ms": delay.Milliseconds(),
			"err":      err,
		})
		if err := sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
	}

	if ctx.Err() == nil {
		p.Breaker.RecordFailure()
	}
	telemetry.Warn("resilience.fallback", map[string]any{
		"name":     p.Name,
		"attempts": attempts,
		"err":      lastErr,
	})
	return fallback(), Outcome{Source: SourceFallback, Attempts: attempts, Err: lastErr}
}

// IsRetryable reports whether err looks transient: timeouts, rate limits,
// upstream 5xx and dropped connections.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var temp interface{ Temporary() bool }
	if errors.As(err, &temp) {
		return temp.Temporary()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"status 429",
		"rate limit",
		"http status 5",
		"server_error",
		"timeout",
		"connection reset",
		"connection refused",
		"connection closed",
		"eof",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
