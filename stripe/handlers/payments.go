package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/framework/web"
	"github.com/faseops/membership/scheduled-tasks/logger"
	"github.com/faseops/membership/scheduled-tasks/stripe/service"
	"github.com/faseops/membership/scheduled-tasks/stripe/service/iface"
)

type Stripe struct {
	loggerProvider logger.Provider
	service        iface.StripeService
}

// NewStripe creates new payment gateway handlers
func NewStripe(ctx context.Context, loggerProvider logger.Provider, conn *connection.Connection) (*Stripe, error) {
	stripeClient, err := service.NewStripeClient(ctx)
	if err != nil {
		return nil, err
	}

	return &Stripe{
		loggerProvider,
		service.NewStripeService(loggerProvider, conn, stripeClient),
	}, nil
}

// CreateCheckoutSessionHandler creates a checkout session and returns its
// redirect URL.
func (h *Stripe) CreateCheckoutSessionHandler(ctx *gin.Context) error {
	var input service.CheckoutSessionInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	session, err := h.service.CreateCheckoutSession(ctx, input)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"url":     session.URL,
	}, http.StatusOK)
}

// CreatePaymentLinkHandler creates a reusable payment link.
func (h *Stripe) CreatePaymentLinkHandler(ctx *gin.Context) error {
	var input service.PaymentLinkInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	paymentLink, err := h.service.CreatePaymentLink(ctx, input)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{
		"success": true,
		"url":     paymentLink.URL,
	}, http.StatusOK)
}

// ListInvoicesHandler lists the gateway invoices of a customer.
func (h *Stripe) ListInvoicesHandler(ctx *gin.Context) error {
	customerID := ctx.Query("customerId")

	invoices, err := h.service.ListInvoices(ctx, customerID)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{
		"success":  true,
		"invoices": invoices,
	}, http.StatusOK)
}

// ListPaymentsHandler lists the payment intents of a customer.
func (h *Stripe) ListPaymentsHandler(ctx *gin.Context) error {
	customerID := ctx.Query("customerId")

	payments, err := h.service.ListPayments(ctx, customerID)
	if err != nil {
		return translateError(err)
	}

	return web.Respond(ctx, gin.H{
		"success":  true,
		"payments": payments,
	}, http.StatusOK)
}

func translateError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyLineItems),
		errors.Is(err, service.ErrMissingURLs),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrCustomerRequired):
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return web.NewRequestError(err, http.StatusInternalServerError)
}
