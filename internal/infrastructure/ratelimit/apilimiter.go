package ratelimit

import (
	"time"
)

const (
	DefaultAPILimit  = 100
	DefaultAPIWindow = time.Minute
)

// apiRecord tracks requests for one client IP within a fixed window.
type apiRecord struct {
	count     int
	resetTime time.Time
}

// APILimiter is a per-IP fixed-window request counter. Bursts across a
// window boundary can momentarily double the effective rate; acceptable
// for abuse mitigation, not for precise quota enforcement.
type APILimiter struct {
	records *stripedMap[apiRecord]

	limit  int
	window time.Duration

	now func() time.Time
}

// NewAPILimiter creates an API limiter. Non-positive arguments fall
// back to the defaults (100 requests / 1m window).
func NewAPILimiter(limit int, window time.Duration) *APILimiter {
	if limit <= 0 {
		limit = DefaultAPILimit
	}
	if window <= 0 {
		window = DefaultAPIWindow
	}
	return &APILimiter{
		records: newStripedMap[apiRecord](),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow reports whether a request from ip fits in the current window.
// Rejections do not mutate state.
func (l *APILimiter) Allow(ip string) bool {
	now := l.now()
	allowed := true

	l.records.update(ip, func(rec *apiRecord) *apiRecord {
		if rec == nil || !rec.resetTime.After(now) {
			return &apiRecord{count: 1, resetTime: now.Add(l.window)}
		}

		if rec.count >= l.limit {
			allowed = false
			return rec
		}

		rec.count++
		return rec
	})

	return allowed
}

// Window returns the configured window duration, used by the HTTP layer
// for the Retry-After hint.
func (l *APILimiter) Window() time.Duration {
	return l.window
}
