// Package handlers provides the HTTP handlers for the portfolio API.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authApp "vitrine/internal/application/auth"
	"vitrine/internal/infrastructure/session"
	"vitrine/internal/shared/constants"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
)

// AuthHandler handles administrator login, logout and session checks.
type AuthHandler struct {
	service *authApp.Service
	logger  logger.Interface
}

func NewAuthHandler(service *authApp.Service, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login authenticates the administrator.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "password is required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), c.ClientIP(), req.Password)
	if err != nil {
		if errors.ShouldLogAuthError(err) {
			h.logger.Warn("login failed", "client_ip", c.ClientIP(), "error", err)
		}
		if authErr := errors.GetAuthError(err); authErr != nil && authErr.RetryAfter > 0 {
			c.Header(constants.HeaderRetryAfter, strconv.Itoa(int(authErr.RetryAfter.Seconds())))
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in", result)
}

// Logout revokes the presented session.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := session.ExtractToken(c.Request.Header)
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Session reports whether the presented session is valid. Reached only
// through the auth middleware, so reaching it at all means yes.
// GET /api/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	utils.OKResponse(c, gin.H{"valid": true})
}
