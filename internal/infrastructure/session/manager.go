// Package session issues, validates and expires the opaque admin session
// tokens. Sessions live in the key-value store; the process holds no
// authoritative cache, and expiry is enforced lazily at read time.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vitrine/internal/infrastructure/kv"
	"vitrine/internal/shared/logger"
)

const (
	keyPrefix  = "session:"
	DefaultTTL = 24 * time.Hour

	// storeTTLSlack keeps expired-but-unread records from accumulating
	// in the store; the lazy expiresAt check below stays authoritative.
	storeTTLSlack = time.Hour
)

// Record is the session metadata persisted under the token key.
type Record struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	// IP is the client address at creation, informational only;
	// it is not re-validated on use.
	IP string `json:"ip"`
}

// Manager issues and validates sessions against the key-value store.
type Manager struct {
	store  kv.Store
	ttl    time.Duration
	logger logger.Interface

	now func() time.Time
}

// NewManager creates a session manager. A non-positive ttl falls back
// to the 24h default.
func NewManager(store kv.Store, ttl time.Duration, log logger.Interface) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:  store,
		ttl:    ttl,
		logger: log.Named("session"),
		now:    time.Now,
	}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for ip and returns its token. A store error
// fails the login attempt; it never leaves a silently missing session.
func (m *Manager) Issue(ctx context.Context, ip string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	now := m.now()
	record := Record{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
		IP:        ip,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}

	if err := m.store.Set(ctx, keyPrefix+token, data, m.ttl+storeTTLSlack); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	return token, nil
}

// Validate reports whether token identifies a live session. Any store
// error is treated as invalid: access is never granted on infrastructure
// failure. An expired session is deleted on first observation.
func (m *Manager) Validate(ctx context.Context, token string) bool {
	if token == "" || !IsWellFormed(token) {
		return false
	}

	data, found, err := m.store.Get(ctx, keyPrefix+token)
	if err != nil {
		m.logger.Error("session lookup failed, treating as invalid", "error", err)
		return false
	}
	if !found {
		return false
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		m.logger.Error("corrupt session record, treating as invalid", "error", err)
		return false
	}

	if !m.now().Before(record.ExpiresAt) {
		// Expired sessions are never revived
		if err := m.store.Delete(ctx, keyPrefix+token); err != nil {
			m.logger.Warn("failed to delete expired session", "error", err)
		}
		return false
	}

	return true
}

// Revoke deletes the session for token, if any. Used by logout.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if !IsWellFormed(token) {
		return nil
	}
	return m.store.Delete(ctx, keyPrefix+token)
}
