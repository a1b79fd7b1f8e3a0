package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine/internal/infrastructure/session"
	"vitrine/internal/shared/constants"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
)

// SessionVerifier is the slice of the auth service the middleware needs.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) bool
}

type AuthMiddleware struct {
	verifier SessionVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier SessionVerifier, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   log,
	}
}

// RequireAdmin gates a route on a live admin session. The response is
// the same generic 401 whether the token is missing, malformed, unknown
// or expired.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.ExtractToken(c.Request.Header)
		if token == "" || !m.verifier.Verify(c.Request.Context(), token) {
			m.logger.Debug("rejected unauthenticated request",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeySessionToken, token)
		c.Next()
	}
}
