package dal

import (
	"context"

	"github.com/faseops/membership/scheduled-tasks/finance/domain"
)

//go:generate mockery --name Invoices --output ./mocks
type Invoices interface {
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) (string, error)
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)
	InvoiceNumberExists(ctx context.Context, invoiceNumber string) (bool, error)
}

//go:generate mockery --name Activities --output ./mocks
type Activities interface {
	CreateActivity(ctx context.Context, activity *domain.Activity) (string, error)
	ListActivities(ctx context.Context, paymentKey string, limit int) ([]*domain.Activity, error)
}
