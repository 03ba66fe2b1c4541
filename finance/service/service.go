package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/faseops/membership/scheduled-tasks/common"
	"github.com/faseops/membership/scheduled-tasks/finance/dal"
	"github.com/faseops/membership/scheduled-tasks/finance/domain"
	"github.com/faseops/membership/scheduled-tasks/finance/pdf"
	"github.com/faseops/membership/scheduled-tasks/finance/storage"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/logger"
	"github.com/faseops/membership/scheduled-tasks/mailer"
	registrationDal "github.com/faseops/membership/scheduled-tasks/registration/dal"
)

const (
	paidInvoicesPathPrefix       = "invoices/paid"
	rendezvousInvoicesPathPrefix = "rendezvous-invoices"

	// invoice numbers carry a 5-digit random suffix; generation retries on
	// collision up to this many times before giving up.
	maxInvoiceNumberAttempts = 10

	defaultActivitiesLimit = 50
)

type FinanceService struct {
	loggerProvider logger.Provider
	*connection.Connection
	invoicesDAL      dal.Invoices
	activitiesDAL    dal.Activities
	registrationsDAL registrationDal.Registrations
	renderer         pdf.Renderer
	artifacts        storage.ArtifactStore
	sender           mailer.ISender
}

func NewFinanceService(ctx context.Context, log logger.Provider, conn *connection.Connection) (*FinanceService, error) {
	renderer, err := pdf.NewDocsRenderer(ctx)
	if err != nil {
		return nil, err
	}

	return &FinanceService{
		log,
		conn,
		dal.NewInvoicesFirestoreWithClient(conn.Firestore),
		dal.NewActivitiesFirestoreWithClient(conn.Firestore),
		registrationDal.NewRegistrationsFirestoreWithClient(conn.Firestore),
		renderer,
		storage.NewGCSArtifactStore(conn),
		mailer.NewSender(),
	}, nil
}

// NewFinanceServiceWithDeps wires explicit dependencies, used by tests.
func NewFinanceServiceWithDeps(
	log logger.Provider,
	conn *connection.Connection,
	invoicesDAL dal.Invoices,
	activitiesDAL dal.Activities,
	registrationsDAL registrationDal.Registrations,
	renderer pdf.Renderer,
	artifacts storage.ArtifactStore,
	sender mailer.ISender,
) *FinanceService {
	return &FinanceService{
		log,
		conn,
		invoicesDAL,
		activitiesDAL,
		registrationsDAL,
		renderer,
		artifacts,
		sender,
	}
}

type LineItemInput struct {
	Description string  `json:"description" validate:"required"`
	Quantity    int64   `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unitPrice"`
}

type GeneratePaidInvoiceInput struct {
	TransactionID    string          `json:"transactionId"`
	Source           string          `json:"source"`
	OrganizationName string          `json:"organizationName"`
	Email            string          `json:"email"`
	LineItems        []LineItemInput `json:"lineItems"`
	PerformedBy      string          `json:"performedBy"`
}

func (input *GeneratePaidInvoiceInput) validate() error {
	if input.TransactionID == "" || input.Source == "" || input.OrganizationName == "" {
		return ErrInvalidInvoiceInput
	}

	if len(input.LineItems) == 0 {
		return ErrEmptyLineItems
	}

	for _, lineItem := range input.LineItems {
		if lineItem.Description == "" || lineItem.Quantity <= 0 {
			return ErrInvalidLineItem
		}
	}

	return nil
}

// GeneratePaidInvoice renders, stores and records a paid invoice. The PDF
// render, the artifact upload and the invoice record are mandatory; the
// activity entry and the email notification run best effort afterwards, so a
// late failure never orphans an already persisted invoice.
func (s *FinanceService) GeneratePaidInvoice(ctx context.Context, input *GeneratePaidInvoiceInput) (*domain.Invoice, error) {
	log := s.loggerProvider(ctx)

	if err := input.validate(); err != nil {
		return nil, err
	}

	invoiceNumber, err := s.allocateInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	log.SetLabel(logger.LabelInvoiceNumber, invoiceNumber)

	lineItems := make([]domain.LineItem, 0, len(input.LineItems))

	var totalAmount float64

	for _, lineItem := range input.LineItems {
		total := float64(lineItem.Quantity) * lineItem.UnitPrice
		totalAmount += total

		lineItems = append(lineItems, domain.LineItem{
			Description: lineItem.Description,
			Quantity:    lineItem.Quantity,
			UnitPrice:   lineItem.UnitPrice,
			Total:       total,
		})
	}

	invoice := &domain.Invoice{
		InvoiceNumber:    invoiceNumber,
		PaymentKey:       domain.PaymentKey(input.Source, input.TransactionID),
		OrganizationName: input.OrganizationName,
		LineItems:        lineItems,
		TotalAmount:      totalAmount,
		GeneratedAt:      time.Now().UTC(),
	}

	objectPath := fmt.Sprintf("%s/%s.pdf", paidInvoicesPathPrefix, invoiceNumber)

	if err := s.persistInvoice(ctx, invoice, objectPath); err != nil {
		return nil, err
	}

	s.appendInvoiceTrail(ctx, invoice, input.Email, input.PerformedBy)

	return invoice, nil
}

// GenerateRegistrationInvoice issues an invoice for a rendezvous registration
// from its stored pricing and stamps the invoice number back on the
// registration.
func (s *FinanceService) GenerateRegistrationInvoice(ctx context.Context, registrationID string) (*domain.Invoice, error) {
	log := s.loggerProvider(ctx)
	log.SetLabel(logger.LabelRegistrationID, registrationID)

	registration, err := s.registrationsDAL.GetByRegistrationID(ctx, registrationID)
	if err != nil {
		if err == registrationDal.ErrRegistrationNotFound {
			return nil, ErrRegistrationNotFound
		}

		return nil, err
	}

	if !registration.PaymentStatus.Eligible() {
		return nil, ErrRegistrationNotConfirmed
	}

	invoiceNumber, err := s.allocateInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	log.SetLabel(logger.LabelInvoiceNumber, invoiceNumber)

	attendeeCount := int64(len(registration.Attendees))

	invoice := &domain.Invoice{
		InvoiceNumber:    invoiceNumber,
		PaymentKey:       domain.PaymentKey("rendezvous", registration.RegistrationID),
		OrganizationName: registration.BillingInfo.Company,
		LineItems: []domain.LineItem{
			{
				Description: "Rendezvous attendance",
				Quantity:    attendeeCount,
				UnitPrice:   registration.Pricing.PricePerTicket,
				Total:       registration.Pricing.Subtotal,
			},
		},
		TotalAmount: registration.Pricing.TotalPrice,
		GeneratedAt: time.Now().UTC(),
	}

	objectPath := fmt.Sprintf("%s/%s.pdf", rendezvousInvoicesPathPrefix, invoiceNumber)

	if err := s.persistInvoice(ctx, invoice, objectPath); err != nil {
		return nil, err
	}

	if err := s.registrationsDAL.SetInvoiceNumber(ctx, registration.ID, invoiceNumber); err != nil {
		log.Errorf("failed to stamp invoice number on registration %s: %s", registrationID, err)
	}

	email := ""
	if attendee := registration.FirstAttendee(); attendee != nil {
		email = attendee.Email
	}

	s.appendInvoiceTrail(ctx, invoice, email, "system")

	return invoice, nil
}

// DownloadInvoice returns the stored PDF bytes for an issued invoice.
func (s *FinanceService) DownloadInvoice(ctx context.Context, invoiceNumber string) ([]byte, error) {
	log := s.loggerProvider(ctx)
	log.SetLabel(logger.LabelInvoiceNumber, invoiceNumber)

	invoice, err := s.invoicesDAL.GetInvoiceByNumber(ctx, invoiceNumber)
	if err != nil {
		if err == dal.ErrInvoiceNotFound {
			return nil, ErrInvoiceNotFound
		}

		return nil, err
	}

	return s.artifacts.ReadInvoicePDF(ctx, invoice.ObjectPath)
}

// ListActivities returns the audit trail for one payment event, newest first.
func (s *FinanceService) ListActivities(ctx context.Context, transactionID, source string, limit int) ([]*domain.Activity, error) {
	log := s.loggerProvider(ctx)

	paymentKey := domain.PaymentKey(source, transactionID)
	log.SetLabel(logger.LabelPaymentKey, paymentKey)

	if limit <= 0 {
		limit = defaultActivitiesLimit
	}

	return s.activitiesDAL.ListActivities(ctx, paymentKey, limit)
}

// persistInvoice runs the mandatory part of the issuance pipeline: render the
// PDF, upload the artifact under the invoice number, record the invoice.
func (s *FinanceService) persistInvoice(ctx context.Context, invoice *domain.Invoice, objectPath string) error {
	pdfData, err := s.renderer.RenderInvoice(ctx, invoice)
	if err != nil {
		return fmt.Errorf("render invoice %s: %w", invoice.InvoiceNumber, err)
	}

	pdfURL, err := s.artifacts.UploadInvoicePDF(ctx, objectPath, pdfData)
	if err != nil {
		return fmt.Errorf("upload invoice %s: %w", invoice.InvoiceNumber, err)
	}

	invoice.PDFURL = pdfURL
	invoice.ObjectPath = objectPath

	docID, err := s.invoicesDAL.CreateInvoice(ctx, invoice)
	if err != nil {
		return fmt.Errorf("record invoice %s: %w", invoice.InvoiceNumber, err)
	}

	invoice.ID = docID

	return nil
}

// appendInvoiceTrail appends the audit entry and emails the invoice. Both are
// best effort: failures are aggregated and logged, never returned, since the
// invoice itself is already durable.
func (s *FinanceService) appendInvoiceTrail(ctx context.Context, invoice *domain.Invoice, email, performedBy string) {
	log := s.loggerProvider(ctx)

	var trailErrors error

	if _, err := s.activitiesDAL.CreateActivity(ctx, &domain.Activity{
		PaymentKey:  invoice.PaymentKey,
		Type:        domain.ActivityTypeInvoiceGenerated,
		Title:       "Invoice generated",
		Description: fmt.Sprintf("Invoice %s issued for %s", invoice.InvoiceNumber, invoice.OrganizationName),
		PerformedBy: performedBy,
		Metadata: map[string]interface{}{
			"invoiceId":     invoice.ID,
			"invoiceNumber": invoice.InvoiceNumber,
			"totalAmount":   invoice.TotalAmount,
		},
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		trailErrors = multierror.Append(trailErrors, fmt.Errorf("append activity: %w", err))
	}

	if email != "" {
		if err := s.sender.SendInvoiceNotification(&mailer.InvoiceNotification{
			Email:            email,
			OrganizationName: invoice.OrganizationName,
			InvoiceNumber:    invoice.InvoiceNumber,
			TotalAmount:      common.FormatAmount(invoice.TotalAmount, "USD"),
			PDFURL:           invoice.PDFURL,
		}); err != nil {
			trailErrors = multierror.Append(trailErrors, fmt.Errorf("send notification: %w", err))
		}
	}

	if trailErrors != nil {
		log.Errorf("invoice %s issued with incomplete trail: %s", invoice.InvoiceNumber, trailErrors)
	}
}

// allocateInvoiceNumber draws random 5-digit suffixes until one is unused.
func (s *FinanceService) allocateInvoiceNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxInvoiceNumberAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(100000))
		if err != nil {
			return "", err
		}

		invoiceNumber := fmt.Sprintf("%s%05d", domain.InvoiceNumberPrefix, n.Int64())

		exists, err := s.invoicesDAL.InvoiceNumberExists(ctx, invoiceNumber)
		if err != nil {
			return "", err
		}

		if !exists {
			return invoiceNumber, nil
		}
	}

	return "", ErrInvoiceNumberExhausted
}
