package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/logger"
)

type StripeService struct {
	loggerProvider logger.Provider
	*connection.Connection
	stripeClient *Client
}

func NewStripeService(loggerProvider logger.Provider, conn *connection.Connection, stripeClient *Client) *StripeService {
	return &StripeService{
		loggerProvider,
		conn,
		stripeClient,
	}
}

type CheckoutLineItem struct {
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Quantity int64  `json:"quantity"`
	Currency string `json:"currency"`
}

type CheckoutSessionInput struct {
	LineItems     []CheckoutLineItem `json:"lineItems"`
	SuccessURL    string             `json:"successUrl"`
	CancelURL     string             `json:"cancelUrl"`
	CustomerEmail string             `json:"customerEmail"`
}

// CreateCheckoutSession creates a one-time payment checkout session and
// returns the redirect URL for it.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (*stripe.CheckoutSession, error) {
	if len(input.LineItems) == 0 {
		return nil, ErrEmptyLineItems
	}

	if input.SuccessURL == "" || input.CancelURL == "" {
		return nil, ErrMissingURLs
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(input.LineItems))

	for _, lineItem := range input.LineItems {
		if lineItem.Name == "" || lineItem.Amount <= 0 {
			return nil, ErrInvalidPrice
		}

		currency := lineItem.Currency
		if currency == "" {
			currency = string(stripe.CurrencyUSD)
		}

		quantity := lineItem.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(lineItem.Amount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(lineItem.Name),
				},
			},
			Quantity: stripe.Int64(quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(input.SuccessURL + "?checkout_session={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(input.CancelURL),
	}

	if input.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(input.CustomerEmail)
	}

	return s.stripeClient.CheckoutSessions.New(params)
}

type PaymentLinkInput struct {
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Quantity int64  `json:"quantity"`
	Currency string `json:"currency"`
}

// CreatePaymentLink creates a reusable payment link for a single product. A
// price object is created first since payment links only accept price ids.
func (s *StripeService) CreatePaymentLink(ctx context.Context, input PaymentLinkInput) (*stripe.PaymentLink, error) {
	if input.Name == "" || input.Amount <= 0 {
		return nil, ErrInvalidPrice
	}

	currency := input.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	price, err := s.stripeClient.Prices.New(&stripe.PriceParams{
		Currency:   stripe.String(currency),
		UnitAmount: stripe.Int64(input.Amount),
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(input.Name),
		},
	})
	if err != nil {
		return nil, err
	}

	return s.stripeClient.PaymentLinks.New(&stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{
				Price:    stripe.String(price.ID),
				Quantity: stripe.Int64(quantity),
			},
		},
	})
}

// ListInvoices returns the gateway invoices of a customer.
func (s *StripeService) ListInvoices(ctx context.Context, customerID string) ([]*stripe.Invoice, error) {
	if customerID == "" {
		return nil, ErrCustomerRequired
	}

	params := &stripe.InvoiceListParams{
		Customer: stripe.String(customerID),
	}

	var invoices []*stripe.Invoice

	iter := s.stripeClient.Invoices.List(params)
	for iter.Next() {
		invoices = append(invoices, iter.Invoice())
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

// ListPayments returns the payment intents of a customer.
func (s *StripeService) ListPayments(ctx context.Context, customerID string) ([]*stripe.PaymentIntent, error) {
	if customerID == "" {
		return nil, ErrCustomerRequired
	}

	params := &stripe.PaymentIntentListParams{
		Customer: stripe.String(customerID),
	}

	var payments []*stripe.PaymentIntent

	iter := s.stripeClient.PaymentIntents.List(params)
	for iter.Next() {
		payments = append(payments, iter.PaymentIntent())
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
