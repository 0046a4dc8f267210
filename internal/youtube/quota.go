package youtube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Quota costs of the endpoints the client calls, in API units.
const (
	CostSearch = 100
	CostVideos = 1
)

// QuotaLimiter controls the API call rate and the daily quota. It uses a token
// bucket for per-second rate limiting and a rolling 24-hour window in which
// every call spends its unit cost.
type QuotaLimiter struct {
	limiter  *rate.Limiter
	maxUnits int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	used    int64
	resetAt time.Time
}

// QuotaOption configures the QuotaLimiter.
type QuotaOption func(*QuotaLimiter)

// WithQuotaNowFunc overrides the time function for testing.
func WithQuotaNowFunc(f func() time.Time) QuotaOption {
	return func(q *QuotaLimiter) {
		q.nowFunc = f
	}
}

// NewQuotaLimiter creates a limiter with the given per-second rate, burst
// size and daily unit budget. The window resets 24 hours after it opens.
func NewQuotaLimiter(perSecond float64, burst int, maxUnits int64, opts ...QuotaOption) *QuotaLimiter {
	q := &QuotaLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxUnits: maxUnits,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.resetAt = q.nowFunc().Add(24 * time.Hour)
	return q
}

// Wait reserves cost units and blocks until the rate limiter allows the call,
// or the context is canceled. Returns ErrQuotaExhausted if the call would
// overspend the daily budget.
func (q *QuotaLimiter) Wait(ctx context.Context, cost int64) error {
	q.mu.Lock()
	q.checkReset()
	if q.used+cost > q.maxUnits {
		used := q.used
		q.mu.Unlock()
		return fmt.Errorf("%w (%d+%d/%d units)", ErrQuotaExhausted, used, cost, q.maxUnits)
	}
	q.used += cost
	q.mu.Unlock()

	if err := q.limiter.Wait(ctx); err != nil {
		q.refund(cost)
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// Exhaust marks the rest of the window as spent. The client calls it when the
// API itself reports the quota gone.
func (q *QuotaLimiter) Exhaust() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.used = q.maxUnits
}

// Used returns the units spent in the current window.
func (q *QuotaLimiter) Used() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.checkReset()
	return q.used
}

// MaxUnits returns the configured daily budget.
func (q *QuotaLimiter) MaxUnits() int64 {
	return q.maxUnits
}

// Remaining returns the units left in the current window.
func (q *QuotaLimiter) Remaining() int64 {
	rem := q.maxUnits - q.Used()
	if rem < 0 {
		return 0
	}
	return rem
}

// ResetAt returns the time when the current window expires.
func (q *QuotaLimiter) ResetAt() time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.resetAt
}

func (q *QuotaLimiter) refund(cost int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.used -= cost
	if q.used < 0 {
		q.used = 0
	}
}

// checkReset must be called with mu held.
func (q *QuotaLimiter) checkReset() {
	now := q.nowFunc()
	if now.After(q.resetAt) {
		q.used = 0
		q.resetAt = now.Add(24 * time.Hour)
	}
}
