package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/faseops/membership/scheduled-tasks/finance/dal"
	dalMocks "github.com/faseops/membership/scheduled-tasks/finance/dal/mocks"
	financeDomain "github.com/faseops/membership/scheduled-tasks/finance/domain"
	pdfMocks "github.com/faseops/membership/scheduled-tasks/finance/pdf/mocks"
	storageMocks "github.com/faseops/membership/scheduled-tasks/finance/storage/mocks"
	"github.com/faseops/membership/scheduled-tasks/logger"
	loggerMocks "github.com/faseops/membership/scheduled-tasks/logger/mocks"
	"github.com/faseops/membership/scheduled-tasks/mailer"
	mailerMocks "github.com/faseops/membership/scheduled-tasks/mailer/mocks"
	registrationDal "github.com/faseops/membership/scheduled-tasks/registration/dal"
	registrationMocks "github.com/faseops/membership/scheduled-tasks/registration/dal/mocks"
	registrationDomain "github.com/faseops/membership/scheduled-tasks/registration/domain"
)

var invoiceNumberPattern = regexp.MustCompile(`^FASE-\d{5}$`)

type financeFixture struct {
	invoicesDAL      dalMocks.Invoices
	activitiesDAL    dalMocks.Activities
	registrationsDAL registrationMocks.Registrations
	renderer         pdfMocks.Renderer
	artifacts        storageMocks.ArtifactStore
	sender           mailerMocks.ISender
}

func testLoggerProvider() logger.Provider {
	return func(_ context.Context) logger.ILogger {
		l := &loggerMocks.ILogger{}
		for _, method := range []string{"Info", "Infof", "Warning", "Warningf", "Error", "Errorf"} {
			l.On(method, mock.Anything).Maybe()
			l.On(method, mock.Anything, mock.Anything).Maybe()
			l.On(method, mock.Anything, mock.Anything, mock.Anything).Maybe()
			l.On(method, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
		}
		l.On("SetLabel", mock.Anything, mock.Anything).Maybe()
		l.On("SetLabels", mock.Anything).Maybe()

		return l
	}
}

func (f *financeFixture) service() *FinanceService {
	return NewFinanceServiceWithDeps(
		testLoggerProvider(),
		nil,
		&f.invoicesDAL,
		&f.activitiesDAL,
		&f.registrationsDAL,
		&f.renderer,
		&f.artifacts,
		&f.sender,
	)
}

func TestFinanceService_GeneratePaidInvoice(t *testing.T) {
	ctx := context.Background()

	input := func() *GeneratePaidInvoiceInput {
		return &GeneratePaidInvoiceInput{
			TransactionID:    "txn_123",
			Source:           "stripe",
			OrganizationName: "Acme Insurance",
			Email:            "billing@acme.example.com",
			LineItems: []LineItemInput{
				{Description: "Annual membership", Quantity: 2, UnitPrice: 100},
				{Description: "Onboarding", Quantity: 1, UnitPrice: 50},
			},
			PerformedBy: "admin@fase.network",
		}
	}

	t.Run("renders, uploads, records and appends the trail", func(t *testing.T) {
		f := financeFixture{}
		f.invoicesDAL.On("InvoiceNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.renderer.On("RenderInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return([]byte("%PDF-1.4"), nil)
		f.artifacts.On("UploadInvoicePDF", ctx, mock.AnythingOfType("string"), []byte("%PDF-1.4")).
			Return("https://storage.example.com/signed", nil)
		f.invoicesDAL.On("CreateInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return("inv-doc-1", nil)
		f.activitiesDAL.On("CreateActivity", ctx, mock.AnythingOfType("*domain.Activity")).
			Return("act-1", nil)
		f.sender.On("SendInvoiceNotification", mock.AnythingOfType("*mailer.InvoiceNotification")).
			Return(nil)

		invoice, err := f.service().GeneratePaidInvoice(ctx, input())

		assert.NoError(t, err)
		assert.Regexp(t, invoiceNumberPattern, invoice.InvoiceNumber)
		assert.Equal(t, "inv-doc-1", invoice.ID)
		assert.Equal(t, "stripetxn_123", invoice.PaymentKey)
		assert.Equal(t, 250.0, invoice.TotalAmount)
		assert.Equal(t, "https://storage.example.com/signed", invoice.PDFURL)
		assert.Len(t, invoice.LineItems, 2)
		assert.Equal(t, 200.0, invoice.LineItems[0].Total)
		assert.Equal(t, 50.0, invoice.LineItems[1].Total)

		objectPath := f.artifacts.Calls[0].Arguments.Get(1).(string)
		assert.True(t, strings.HasPrefix(objectPath, "invoices/paid/"))
		assert.True(t, strings.HasSuffix(objectPath, invoice.InvoiceNumber+".pdf"))

		activity := f.activitiesDAL.Calls[0].Arguments.Get(1).(*financeDomain.Activity)
		assert.Equal(t, financeDomain.ActivityTypeInvoiceGenerated, activity.Type)
		assert.Equal(t, "stripetxn_123", activity.PaymentKey)
		assert.Equal(t, "admin@fase.network", activity.PerformedBy)
		assert.Equal(t, invoice.InvoiceNumber, activity.Metadata["invoiceNumber"])

		notification := f.sender.Calls[0].Arguments.Get(0).(*mailer.InvoiceNotification)
		assert.Equal(t, "billing@acme.example.com", notification.Email)
		assert.Equal(t, invoice.InvoiceNumber, notification.InvoiceNumber)
	})

	t.Run("no email skips the notification", func(t *testing.T) {
		f := financeFixture{}
		f.invoicesDAL.On("InvoiceNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.renderer.On("RenderInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return([]byte("%PDF-1.4"), nil)
		f.artifacts.On("UploadInvoicePDF", ctx, mock.AnythingOfType("string"), mock.Anything).
			Return("https://storage.example.com/signed", nil)
		f.invoicesDAL.On("CreateInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return("inv-doc-1", nil)
		f.activitiesDAL.On("CreateActivity", ctx, mock.AnythingOfType("*domain.Activity")).
			Return("act-1", nil)

		in := input()
		in.Email = ""

		_, err := f.service().GeneratePaidInvoice(ctx, in)

		assert.NoError(t, err)
		f.sender.AssertNotCalled(t, "SendInvoiceNotification", mock.Anything)
	})

	t.Run("input validation", func(t *testing.T) {
		tests := []struct {
			name        string
			mutate      func(*GeneratePaidInvoiceInput)
			expectedErr error
		}{
			{
				name:        "missing transaction id",
				mutate:      func(in *GeneratePaidInvoiceInput) { in.TransactionID = "" },
				expectedErr: ErrInvalidInvoiceInput,
			},
			{
				name:        "missing source",
				mutate:      func(in *GeneratePaidInvoiceInput) { in.Source = "" },
				expectedErr: ErrInvalidInvoiceInput,
			},
			{
				name:        "missing organization",
				mutate:      func(in *GeneratePaidInvoiceInput) { in.OrganizationName = "" },
				expectedErr: ErrInvalidInvoiceInput,
			},
			{
				name:        "no line items",
				mutate:      func(in *GeneratePaidInvoiceInput) { in.LineItems = nil },
				expectedErr: ErrEmptyLineItems,
			},
			{
				name: "zero quantity line item",
				mutate: func(in *GeneratePaidInvoiceInput) {
					in.LineItems[0].Quantity = 0
				},
				expectedErr: ErrInvalidLineItem,
			},
			{
				name: "blank description line item",
				mutate: func(in *GeneratePaidInvoiceInput) {
					in.LineItems[1].Description = ""
				},
				expectedErr: ErrInvalidLineItem,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := financeFixture{}

				in := input()
				tt.mutate(in)

				invoice, err := f.service().GeneratePaidInvoice(ctx, in)

				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, invoice)
				f.renderer.AssertNotCalled(t, "RenderInvoice", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("retries on invoice number collision", func(t *testing.T) {
		f := financeFixture{}
		f.invoicesDAL.On("InvoiceNumberExists", ctx, mock.AnythingOfType("string")).
			Return(true, nil).Once()
		f.invoicesDAL.On("InvoiceNumberExists", ctx, mock.AnythingOfType("string")).
			Return(false, nil).Once()
		f.renderer.On("RenderInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return([]byte("%PDF-1.4"), nil)
		f.artifacts.On("UploadInvoicePDF", ctx, mock.AnythingOfType("string"), mock.Anything).
			Return("https://storage.example.com/signed", nil)
		f.invoicesDAL.On("CreateInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return("inv-doc-1", nil)
		f.activitiesDAL.On("CreateActivity", ctx, mock.AnythingOfType("*domain.Activity")).
			Return("act-1", nil)
		f.sender.On("SendInvoiceNotification", mock.Anything).Return(nil)

		invoice, err := f.service().GeneratePaidInvoice(ctx, input())

		assert.NoError(t, err)
		assert.Regexp(t, invoiceNumberPattern, invoice.InvoiceNumber)
		f.invoicesDAL.AssertNumberOfCalls(t, "InvoiceNumberExists", 2)
	})

	t.Run("gives up after exhausting collision retries", func(t *testing.T) {
		f := financeFixture{}
		f.invoicesDAL.On("InvoiceNumberExists", ctx, mock.AnythingOfType("string")).
			Return(true, nil)

		invoice, err := f.service().GeneratePaidInvoice(ctx, input())

		assert.ErrorIs(t, err, ErrInvoiceNumberExhausted)
		assert.Nil(t, invoice)
		f.invoicesDAL.AssertNumberOfCalls(t, "InvoiceNumberExists", 10)
		f.renderer.AssertNotCalled(t, "RenderInvoice", mock.Anything, mock.Anything)
	})

	t.Run("render failure aborts before anything is stored", func(t *testing.T) {
		f := financeFixture{}
		f.invoicesDAL.On("InvoiceNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.renderer.On("RenderInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return(nil, errors.New("docs api unavailable"))

		invoice, err := f.service().GeneratePaidInvoice(ctx, input())

		assert.Error(t, err)
		assert.Nil(t, invoice)
		f.artifacts.AssertNotCalled(t, "UploadInvoicePDF", mock.Anything, mock.Anything, mock.Anything)
		f.invoicesDAL.AssertNotCalled(t, "CreateInvoice", mock.Anything, mock.Anything)
	})

	t.Run("trail failures do not fail an issued invoice", func(t *testing.T) {
		f := financeFixture{}
		f.invoicesDAL.On("InvoiceNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.renderer.On("RenderInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return([]byte("%PDF-1.4"), nil)
		f.artifacts.On("UploadInvoicePDF", ctx, mock.AnythingOfType("string"), mock.Anything).
			Return("https://storage.example.com/signed", nil)
		f.invoicesDAL.On("CreateInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return("inv-doc-1", nil)
		f.activitiesDAL.On("CreateActivity", ctx, mock.AnythingOfType("*domain.Activity")).
			Return("", errors.New("deadline exceeded"))
		f.sender.On("SendInvoiceNotification", mock.Anything).
			Return(errors.New("sendgrid is down"))

		invoice, err := f.service().GeneratePaidInvoice(ctx, input())

		assert.NoError(t, err)
		assert.Equal(t, "inv-doc-1", invoice.ID)
	})
}

func TestFinanceService_GenerateRegistrationInvoice(t *testing.T) {
	ctx := context.Background()

	registration := func(status registrationDomain.PaymentStatus) *registrationDomain.Registration {
		return &registrationDomain.Registration{
			ID:             "doc-1",
			RegistrationID: "R1",
			PaymentStatus:  status,
			BillingInfo:    registrationDomain.BillingInfo{Company: "Acme Insurance"},
			Attendees: []registrationDomain.Attendee{
				{FirstName: "Nora", LastName: "Quinn", Email: "nora@example.com"},
				{FirstName: "Iris", LastName: "Vale", Email: "iris@example.com"},
			},
			Pricing: registrationDomain.Pricing{
				PricePerTicket: 500,
				Subtotal:       1000,
				VATAmount:      210,
				TotalPrice:     1210,
			},
		}
	}

	t.Run("issues from stored pricing and stamps the registration", func(t *testing.T) {
		f := financeFixture{}
		f.registrationsDAL.On("GetByRegistrationID", ctx, "R1").
			Return(registration(registrationDomain.PaymentStatusConfirmed), nil)
		f.invoicesDAL.On("InvoiceNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.renderer.On("RenderInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return([]byte("%PDF-1.4"), nil)
		f.artifacts.On("UploadInvoicePDF", ctx, mock.AnythingOfType("string"), mock.Anything).
			Return("https://storage.example.com/signed", nil)
		f.invoicesDAL.On("CreateInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return("inv-doc-1", nil)
		f.registrationsDAL.On("SetInvoiceNumber", ctx, "doc-1", mock.AnythingOfType("string")).
			Return(nil)
		f.activitiesDAL.On("CreateActivity", ctx, mock.AnythingOfType("*domain.Activity")).
			Return("act-1", nil)
		f.sender.On("SendInvoiceNotification", mock.AnythingOfType("*mailer.InvoiceNotification")).
			Return(nil)

		invoice, err := f.service().GenerateRegistrationInvoice(ctx, "R1")

		assert.NoError(t, err)
		assert.Equal(t, "rendezvousR1", invoice.PaymentKey)
		assert.Equal(t, "Acme Insurance", invoice.OrganizationName)
		assert.Equal(t, 1210.0, invoice.TotalAmount)
		assert.Len(t, invoice.LineItems, 1)
		assert.Equal(t, int64(2), invoice.LineItems[0].Quantity)
		assert.Equal(t, 500.0, invoice.LineItems[0].UnitPrice)
		assert.Equal(t, 1000.0, invoice.LineItems[0].Total)

		objectPath := f.artifacts.Calls[0].Arguments.Get(1).(string)
		assert.True(t, strings.HasPrefix(objectPath, "rendezvous-invoices/"))

		stamped := f.registrationsDAL.Calls[1].Arguments.Get(2).(string)
		assert.Equal(t, invoice.InvoiceNumber, stamped)

		notification := f.sender.Calls[0].Arguments.Get(0).(*mailer.InvoiceNotification)
		assert.Equal(t, "nora@example.com", notification.Email)
	})

	t.Run("stamp failure does not fail issuance", func(t *testing.T) {
		f := financeFixture{}
		f.registrationsDAL.On("GetByRegistrationID", ctx, "R1").
			Return(registration(registrationDomain.PaymentStatusPaid), nil)
		f.invoicesDAL.On("InvoiceNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		f.renderer.On("RenderInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return([]byte("%PDF-1.4"), nil)
		f.artifacts.On("UploadInvoicePDF", ctx, mock.AnythingOfType("string"), mock.Anything).
			Return("https://storage.example.com/signed", nil)
		f.invoicesDAL.On("CreateInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).
			Return("inv-doc-1", nil)
		f.registrationsDAL.On("SetInvoiceNumber", ctx, "doc-1", mock.AnythingOfType("string")).
			Return(errors.New("deadline exceeded"))
		f.activitiesDAL.On("CreateActivity", ctx, mock.AnythingOfType("*domain.Activity")).
			Return("act-1", nil)
		f.sender.On("SendInvoiceNotification", mock.Anything).Return(nil)

		invoice, err := f.service().GenerateRegistrationInvoice(ctx, "R1")

		assert.NoError(t, err)
		assert.NotNil(t, invoice)
	})

	t.Run("unknown registration", func(t *testing.T) {
		f := financeFixture{}
		f.registrationsDAL.On("GetByRegistrationID", ctx, "nope").
			Return(nil, registrationDal.ErrRegistrationNotFound)

		invoice, err := f.service().GenerateRegistrationInvoice(ctx, "nope")

		assert.ErrorIs(t, err, ErrRegistrationNotFound)
		assert.Nil(t, invoice)
	})

	t.Run("pending registration is not invoiceable", func(t *testing.T) {
		f := financeFixture{}
		f.registrationsDAL.On("GetByRegistrationID", ctx, "R1").
			Return(registration(registrationDomain.PaymentStatusPendingBankTransfer), nil)

		invoice, err := f.service().GenerateRegistrationInvoice(ctx, "R1")

		assert.ErrorIs(t, err, ErrRegistrationNotConfirmed)
		assert.Nil(t, invoice)
		f.invoicesDAL.AssertNotCalled(t, "InvoiceNumberExists", mock.Anything, mock.Anything)
	})
}

func TestFinanceService_DownloadInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("reads the stored artifact", func(t *testing.T) {
		f := financeFixture{}
		f.invoicesDAL.On("GetInvoiceByNumber", ctx, "FASE-00042").
			Return(&financeDomain.Invoice{
				InvoiceNumber: "FASE-00042",
				ObjectPath:    "invoices/paid/FASE-00042.pdf",
			}, nil)
		f.artifacts.On("ReadInvoicePDF", ctx, "invoices/paid/FASE-00042.pdf").
			Return([]byte("%PDF-1.4"), nil)

		got, err := f.service().DownloadInvoice(ctx, "FASE-00042")

		assert.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), got)
	})

	t.Run("unknown invoice number", func(t *testing.T) {
		f := financeFixture{}
		f.invoicesDAL.On("GetInvoiceByNumber", ctx, "FASE-99999").
			Return(nil, dal.ErrInvoiceNotFound)

		got, err := f.service().DownloadInvoice(ctx, "FASE-99999")

		assert.ErrorIs(t, err, ErrInvoiceNotFound)
		assert.Nil(t, got)
		f.artifacts.AssertNotCalled(t, "ReadInvoicePDF", mock.Anything, mock.Anything)
	})

	t.Run("storage failure is propagated", func(t *testing.T) {
		f := financeFixture{}
		f.invoicesDAL.On("GetInvoiceByNumber", ctx, "FASE-00042").
			Return(&financeDomain.Invoice{
				InvoiceNumber: "FASE-00042",
				ObjectPath:    "invoices/paid/FASE-00042.pdf",
			}, nil)
		f.artifacts.On("ReadInvoicePDF", ctx, "invoices/paid/FASE-00042.pdf").
			Return(nil, errors.New("object not found"))

		_, err := f.service().DownloadInvoice(ctx, "FASE-00042")

		assert.Error(t, err)
	})
}

func TestFinanceService_ListActivities(t *testing.T) {
	ctx := context.Background()

	activities := []*financeDomain.Activity{
		{ID: "act-2", Type: financeDomain.ActivityTypeInvoiceGenerated},
		{ID: "act-1", Type: financeDomain.ActivityTypeStatusChanged},
	}

	t.Run("keys by source and transaction id", func(t *testing.T) {
		f := financeFixture{}
		f.activitiesDAL.On("ListActivities", ctx, "stripetxn_123", 10).Return(activities, nil)

		got, err := f.service().ListActivities(ctx, "txn_123", "stripe", 10)

		assert.NoError(t, err)
		assert.Equal(t, activities, got)
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		f := financeFixture{}
		f.activitiesDAL.On("ListActivities", ctx, "stripetxn_123", 50).Return(activities, nil)

		got, err := f.service().ListActivities(ctx, "txn_123", "stripe", 0)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
