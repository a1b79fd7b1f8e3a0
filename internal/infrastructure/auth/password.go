package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier checks a submitted password against the configured
// admin secret. The secret may be a bcrypt hash (recommended, generate
// one with `vitrine hashpw`) or a plaintext value; plaintext comparison
// is constant-time.
type PasswordVerifier struct {
	secret   string
	isBcrypt bool
}

// NewPasswordVerifier creates a verifier for the configured secret.
// An empty secret means no administrator password is configured; every
// verification fails and the caller must surface a configuration error.
func NewPasswordVerifier(secret string) *PasswordVerifier {
	return &PasswordVerifier{
		secret:   secret,
		isBcrypt: looksLikeBcrypt(secret),
	}
}

// Configured reports whether an admin secret is present.
func (v *PasswordVerifier) Configured() bool {
	return v.secret != ""
}

// Verify reports whether password matches the configured secret.
func (v *PasswordVerifier) Verify(password string) bool {
	if v.secret == "" {
		return false
	}

	if v.isBcrypt {
		return bcrypt.CompareHashAndPassword([]byte(v.secret), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(password)) == 1
}

// HashPassword produces a bcrypt hash suitable for the admin_password
// config value.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func looksLikeBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
