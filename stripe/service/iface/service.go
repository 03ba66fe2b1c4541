package iface

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/faseops/membership/scheduled-tasks/stripe/service"
)

//go:generate mockery --name StripeService --output ./mocks
type StripeService interface {
	CreateCheckoutSession(ctx context.Context, input service.CheckoutSessionInput) (*stripe.CheckoutSession, error)
	CreatePaymentLink(ctx context.Context, input service.PaymentLinkInput) (*stripe.PaymentLink, error)
	ListInvoices(ctx context.Context, customerID string) ([]*stripe.Invoice, error)
	ListPayments(ctx context.Context, customerID string) ([]*stripe.PaymentIntent, error)
}
