package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/framework/web"
	"github.com/faseops/membership/scheduled-tasks/logger"
	"github.com/faseops/membership/scheduled-tasks/registration/domain"
	"github.com/faseops/membership/scheduled-tasks/registration/service"
	"github.com/faseops/membership/scheduled-tasks/registration/service/iface"
)

type Registrations struct {
	loggerProvider logger.Provider
	service        iface.RegistrationService
}

// NewRegistrations creates new registration package handlers
func NewRegistrations(loggerProvider logger.Provider, conn *connection.Connection) *Registrations {
	return &Registrations{
		loggerProvider,
		service.NewRegistrationService(loggerProvider, conn),
	}
}

type updateStatusRequest struct {
	RegistrationID string `json:"registrationId" binding:"required"`
	Status         string `json:"status" binding:"required"`
}

type updateStatusResponse struct {
	Success      bool                 `json:"success"`
	Registration *domain.Registration `json:"registration"`
}

// UpdateStatusHandler transitions the payment status of a registration.
func (h *Registrations) UpdateStatusHandler(ctx *gin.Context) error {
	var req updateStatusRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	registration, err := h.service.UpdateStatus(ctx, service.UpdateStatusInput{
		RegistrationID: req.RegistrationID,
		Status:         req.Status,
	})
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, updateStatusResponse{
		Success:      true,
		Registration: registration,
	}, http.StatusOK)
}

type deleteRequest struct {
	RegistrationID     string `json:"registrationId" binding:"required"`
	ConfirmationPhrase string `json:"confirmationPhrase"`
	InvoiceNumber      string `json:"invoiceNumber"`
}

// DeleteHandler hard-deletes a registration after the confirmation phrase and
// optional invoice number guard pass.
func (h *Registrations) DeleteHandler(ctx *gin.Context) error {
	var req deleteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.Delete(ctx, service.DeleteInput{
		RegistrationID:     req.RegistrationID,
		ConfirmationPhrase: req.ConfirmationPhrase,
		InvoiceNumber:      req.InvoiceNumber,
	}); err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{"success": true}, http.StatusOK)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidPaymentStatus),
		errors.Is(err, service.ErrIllegalTransition),
		errors.Is(err, service.ErrInvoiceNumberMismatch):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, service.ErrRegistrationNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrDeleteNotConfirmed):
		return web.NewRequestError(err, http.StatusForbidden)
	case errors.Is(err, service.ErrNotEligibleForCheckIn):
		return web.NewRequestError(err, http.StatusPreconditionFailed)
	}

	return web.NewRequestError(err, http.StatusInternalServerError)
}
