package dal

import (
	"context"
	"time"

	"github.com/faseops/membership/scheduled-tasks/registration/domain"
)

//go:generate mockery --name Registrations --output ./mocks
type Registrations interface {
	GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Registration, error)
	GetByDocID(ctx context.Context, docID string) (*domain.Registration, error)
	SetPaymentStatus(ctx context.Context, docID string, paymentStatus domain.PaymentStatus, status domain.Status, confirmedAt *time.Time) error
	CheckIn(ctx context.Context, docID string) (*domain.Registration, bool, error)
	SetInvoiceNumber(ctx context.Context, docID string, invoiceNumber string) error
	Delete(ctx context.Context, docID string, invoiceNumber string) error
	ListAll(ctx context.Context) ([]*domain.Registration, error)
}
