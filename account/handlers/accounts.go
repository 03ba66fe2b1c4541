package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/faseops/membership/scheduled-tasks/account/domain"
	"github.com/faseops/membership/scheduled-tasks/account/service"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/framework/web"
	"github.com/faseops/membership/scheduled-tasks/logger"
)

type Accounts struct {
	loggerProvider logger.Provider
	service        *service.AccountService
}

// NewAccounts creates new account package handlers
func NewAccounts(loggerProvider logger.Provider, conn *connection.Connection) *Accounts {
	return &Accounts{
		loggerProvider,
		service.NewAccountService(loggerProvider, conn),
	}
}

// GetAccountHandler fetches one member account by id.
func (h *Accounts) GetAccountHandler(ctx *gin.Context) error {
	accountID := ctx.Param("accountID")
	if accountID == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	account, err := h.service.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, account, http.StatusOK)
}

// ListAccountsHandler lists member accounts, optionally filtered by
// comma-separated organizationTypes and accountStatuses query params.
func (h *Accounts) ListAccountsHandler(ctx *gin.Context) error {
	filter := domain.AccountFilter{
		OrganizationTypes: parseOrganizationTypes(ctx.Query("organizationTypes")),
		AccountStatuses:   parseAccountStatuses(ctx.Query("accountStatuses")),
	}

	accounts, err := h.service.ListAccounts(ctx, filter)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{
		"success":  true,
		"accounts": accounts,
	}, http.StatusOK)
}

type updateAccountStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatusHandler applies an admin status change to an account.
func (h *Accounts) UpdateStatusHandler(ctx *gin.Context) error {
	accountID := ctx.Param("accountID")
	if accountID == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	var req updateAccountStatusRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.UpdateStatus(ctx, accountID, domain.AccountStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccountStatus):
			return web.NewRequestError(err, http.StatusBadRequest)
		case errors.Is(err, service.ErrAccountNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"success": true}, http.StatusOK)
}

func parseOrganizationTypes(raw string) []domain.OrganizationType {
	var types []domain.OrganizationType

	for _, v := range splitCommaList(raw) {
		types = append(types, domain.OrganizationType(v))
	}

	return types
}

func parseAccountStatuses(raw string) []domain.AccountStatus {
	var statuses []domain.AccountStatus

	for _, v := range splitCommaList(raw) {
		statuses = append(statuses, domain.AccountStatus(v))
	}

	return statuses
}

func splitCommaList(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string

	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	return values
}
