// Package auth orchestrates the admin login flow: rate limit check,
// password verification, session issuance and attempt bookkeeping.
package auth

import (
	"context"
	"time"

	infraAuth "vitrine/internal/infrastructure/auth"
	"vitrine/internal/infrastructure/ratelimit"
	"vitrine/internal/infrastructure/session"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

// LoginResult carries the issued session token back to the handler.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Service struct {
	verifier *infraAuth.PasswordVerifier
	sessions *session.Manager
	limiter  *ratelimit.LoginLimiter
	logger   logger.Interface
}

func NewService(
	verifier *infraAuth.PasswordVerifier,
	sessions *session.Manager,
	limiter *ratelimit.LoginLimiter,
	log logger.Interface,
) *Service {
	return &Service{
		verifier: verifier,
		sessions: sessions,
		limiter:  limiter,
		logger:   log.Named("auth"),
	}
}

// Login authenticates the administrator from ip. Failures are generic
// toward the client; the limiter decides lockouts, and a missing admin
// password fails every attempt loudly.
func (s *Service) Login(ctx context.Context, ip, password string) (*LoginResult, error) {
	if !s.verifier.Configured() {
		s.logger.Error("login rejected: no administrator password configured")
		return nil, errors.NewMisconfiguredError("administrator password not set")
	}

	decision := s.limiter.Check(ip)
	if !decision.Allowed {
		s.logger.Warn("login attempt during lockout",
			"ip", ip,
			"locked_until", decision.LockedUntil)
		return nil, errors.NewRateLimitedError(time.Until(decision.LockedUntil))
	}

	if !s.verifier.Verify(password) {
		s.limiter.RecordFailure(ip)
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := s.sessions.Issue(ctx, ip)
	if err != nil {
		// The write may or may not have landed; the caller only ever
		// sees a failed login.
		s.logger.Error("session issuance failed", "error", err)
		return nil, errors.NewUpstreamError("session store")
	}

	s.limiter.Clear(ip)
	s.logger.Info("administrator logged in", "ip", ip)

	return &LoginResult{
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessions.TTL()),
	}, nil
}

// Logout revokes the session for token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.logger.Error("session revocation failed", "error", err)
		return errors.NewUpstreamError("session store")
	}
	return nil
}

// Verify reports whether token identifies a live admin session.
func (s *Service) Verify(ctx context.Context, token string) bool {
	return s.sessions.Validate(ctx, token)
}
