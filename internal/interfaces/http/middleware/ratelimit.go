package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vitrine/internal/infrastructure/ratelimit"
	"vitrine/internal/shared/constants"
	"vitrine/internal/shared/utils"
)

// RateLimit enforces the per-IP fixed-window API limit. Rejected
// requests get a Retry-After hint of one window.
func RateLimit(limiter *ratelimit.APILimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header(constants.HeaderRetryAfter, strconv.Itoa(int(limiter.Window().Seconds())))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
