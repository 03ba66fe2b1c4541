package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/faseops/membership/scheduled-tasks/finance/service"
	"github.com/faseops/membership/scheduled-tasks/finance/service/iface"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/framework/web"
	"github.com/faseops/membership/scheduled-tasks/logger"
)

type Finance struct {
	loggerProvider logger.Provider
	service        iface.FinanceService
}

// NewFinance creates new finance package handlers
func NewFinance(ctx context.Context, loggerProvider logger.Provider, conn *connection.Connection) (*Finance, error) {
	financeService, err := service.NewFinanceService(ctx, loggerProvider, conn)
	if err != nil {
		return nil, err
	}

	return &Finance{
		loggerProvider,
		financeService,
	}, nil
}

type generatePaidInvoiceRequest struct {
	TransactionID    string                  `json:"transactionId" binding:"required"`
	Source           string                  `json:"source" binding:"required"`
	OrganizationName string                  `json:"organizationName" binding:"required"`
	Email            string                  `json:"email"`
	LineItems        []service.LineItemInput `json:"lineItems" binding:"required" validate:"min=1,dive"`
	PerformedBy      string                  `json:"performedBy"`
}

// GeneratePaidInvoiceHandler renders and records a paid invoice.
func (h *Finance) GeneratePaidInvoiceHandler(ctx *gin.Context) error {
	var req generatePaidInvoiceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	invoice, err := h.service.GeneratePaidInvoice(ctx, &service.GeneratePaidInvoiceInput{
		TransactionID:    req.TransactionID,
		Source:           req.Source,
		OrganizationName: req.OrganizationName,
		Email:            req.Email,
		LineItems:        req.LineItems,
		PerformedBy:      req.PerformedBy,
	})
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"invoice": invoice,
	}, http.StatusOK)
}

type registrationInvoiceRequest struct {
	RegistrationID string `json:"registrationId" binding:"required"`
}

// GenerateRegistrationInvoiceHandler issues an invoice for a confirmed
// rendezvous registration.
func (h *Finance) GenerateRegistrationInvoiceHandler(ctx *gin.Context) error {
	var req registrationInvoiceRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	invoice, err := h.service.GenerateRegistrationInvoice(ctx, req.RegistrationID)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"invoice": invoice,
	}, http.StatusOK)
}

// DownloadInvoiceHandler streams the stored invoice PDF as an attachment.
func (h *Finance) DownloadInvoiceHandler(ctx *gin.Context) error {
	invoiceNumber := ctx.Param("invoiceNumber")

	data, err := h.service.DownloadInvoice(ctx, invoiceNumber)
	if err != nil {
		return translateError(err)
	}

	return web.RespondDownloadFile(ctx, data, invoiceNumber+".pdf")
}

// ListActivitiesHandler lists the audit trail of one payment event.
func (h *Finance) ListActivitiesHandler(ctx *gin.Context) error {
	transactionID := ctx.Query("transactionId")
	source := ctx.Query("source")

	if transactionID == "" || source == "" {
		return web.NewRequestError(errors.New("transactionId and source are required"), http.StatusBadRequest)
	}

	limit := 0
	if rawLimit := ctx.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		limit = parsed
	}

	activities, err := h.service.ListActivities(ctx, transactionID, source, limit)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{
		"success":    true,
		"activities": activities,
	}, http.StatusOK)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInvoiceInput),
		errors.Is(err, service.ErrEmptyLineItems),
		errors.Is(err, service.ErrInvalidLineItem):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, service.ErrRegistrationNotFound),
		errors.Is(err, service.ErrInvoiceNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrRegistrationNotConfirmed):
		return web.NewRequestError(err, http.StatusPreconditionFailed)
	}

	return web.NewRequestError(err, http.StatusInternalServerError)
}
