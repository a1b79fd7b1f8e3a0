package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"vitrine/internal/shared/constants"
)

const tokenBytes = 32

// tokenShape matches the hex encoding of tokenBytes random bytes. Bearer
// values that do not match are ignored so unrelated credentials sharing
// the Authorization header are never mistaken for session tokens.
var tokenShape = regexp.MustCompile(`^[0-9a-f]{64}$`)

// generateToken returns a cryptographically random opaque token.
func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// IsWellFormed reports whether raw has the expected opaque-token shape.
func IsWellFormed(raw string) bool {
	return tokenShape.MatchString(raw)
}

// ExtractToken pulls the session token from request headers: the
// dedicated admin header first, then a bearer Authorization value that
// matches the token shape. Returns "" when neither is present.
func ExtractToken(header http.Header) string {
	if token := header.Get(constants.HeaderAdminToken); token != "" {
		return token
	}

	authHeader := header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	if !IsWellFormed(parts[1]) {
		return ""
	}
	return parts[1]
}
