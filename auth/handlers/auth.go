package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	accountDal "github.com/faseops/membership/scheduled-tasks/account/dal"
	"github.com/faseops/membership/scheduled-tasks/auth/service"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/framework/web"
	"github.com/faseops/membership/scheduled-tasks/logger"
)

type Auth struct {
	loggerProvider logger.Provider
	service        *service.AuthService
}

// NewAuth creates new auth package handlers
func NewAuth(loggerProvider logger.Provider, conn *connection.Connection) *Auth {
	return &Auth{
		loggerProvider,
		service.NewAuthService(loggerProvider, conn),
	}
}

type sendVerificationRequest struct {
	Email string `json:"email" binding:"required"`
}

// SendVerificationHandler issues a 6-digit verification code with a 20-minute TTL.
func (h *Auth) SendVerificationHandler(ctx *gin.Context) error {
	var req sendVerificationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	code, err := h.service.SendVerification(ctx, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{
		"success":   true,
		"expiresAt": code.ExpiresAt,
	}, http.StatusOK)
}

type verifyUserEmailRequest struct {
	AccountID string `json:"accountId" binding:"required"`
	Code      string `json:"code" binding:"required"`
}

// VerifyUserEmailHandler consumes a verification code and marks the account's
// email verified.
func (h *Auth) VerifyUserEmailHandler(ctx *gin.Context) error {
	var req verifyUserEmailRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.VerifyUserEmail(ctx, req.AccountID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrCodeInvalid):
			return web.NewRequestError(err, http.StatusBadRequest)
		case errors.Is(err, accountDal.ErrAccountNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"success": true}, http.StatusOK)
}
