// Package ratelimit holds the in-process abuse-mitigation counters: a
// sliding-window login attempt limiter with lockout and a fixed-window
// API request limiter. State is process-owned and resets on restart.
package ratelimit

import (
	"time"
)

const (
	DefaultMaxAttempts     = 5
	DefaultAttemptWindow   = 5 * time.Minute
	DefaultLockoutDuration = 15 * time.Minute
)

// Decision is the outcome of a login rate limit check.
type Decision struct {
	Allowed     bool
	LockedUntil time.Time
}

// attemptRecord tracks failed logins for one client IP.
type attemptRecord struct {
	count       int
	lastAttempt time.Time
	lockedUntil time.Time
}

// LoginLimiter throttles login attempts per client IP using a sliding
// window with lockout. Constructed once per process and injected into
// the auth service; it holds no global state.
type LoginLimiter struct {
	records *stripedMap[attemptRecord]

	maxAttempts int
	window      time.Duration
	lockout     time.Duration

	now func() time.Time
}

// NewLoginLimiter creates a login limiter. Non-positive arguments fall
// back to the defaults (5 attempts / 5m window / 15m lockout).
func NewLoginLimiter(maxAttempts int, window, lockout time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultAttemptWindow
	}
	if lockout <= 0 {
		lockout = DefaultLockoutDuration
	}
	return &LoginLimiter{
		records:     newStripedMap[attemptRecord](),
		maxAttempts: maxAttempts,
		window:      window,
		lockout:     lockout,
		now:         time.Now,
	}
}

// Check decides whether a login attempt from ip may proceed. When the
// failure count has reached the limit inside the attempt window, the IP
// transitions into lockout and the decision carries the lockout deadline.
func (l *LoginLimiter) Check(ip string) Decision {
	now := l.now()
	decision := Decision{Allowed: true}

	l.records.update(ip, func(rec *attemptRecord) *attemptRecord {
		if rec == nil {
			return nil
		}

		if rec.lockedUntil.After(now) {
			decision = Decision{LockedUntil: rec.lockedUntil}
			return rec
		}

		if now.Sub(rec.lastAttempt) > l.window {
			// Window elapsed and no active lockout: forget the record
			return nil
		}

		if rec.count >= l.maxAttempts {
			rec.lockedUntil = now.Add(l.lockout)
			decision = Decision{LockedUntil: rec.lockedUntil}
		}

		return rec
	})

	return decision
}

// RecordFailure counts a failed login from ip. The count resets to one
// when the attempt window has elapsed, unless a lockout is active.
func (l *LoginLimiter) RecordFailure(ip string) {
	now := l.now()

	l.records.update(ip, func(rec *attemptRecord) *attemptRecord {
		if rec == nil {
			return &attemptRecord{count: 1, lastAttempt: now}
		}

		if rec.lockedUntil.Before(now) && now.Sub(rec.lastAttempt) > l.window {
			return &attemptRecord{count: 1, lastAttempt: now}
		}

		rec.count++
		rec.lastAttempt = now
		return rec
	})
}

// Clear removes all attempt state for ip. Called on successful login so
// the next attempt starts a fresh window.
func (l *LoginLimiter) Clear(ip string) {
	l.records.delete(ip)
}
