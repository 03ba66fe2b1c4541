package iface

import (
	"context"

	"github.com/faseops/membership/scheduled-tasks/finance/domain"
	"github.com/faseops/membership/scheduled-tasks/finance/service"
)

//go:generate mockery --name FinanceService --output ./mocks
type FinanceService interface {
	GeneratePaidInvoice(ctx context.Context, input *service.GeneratePaidInvoiceInput) (*domain.Invoice, error)
	GenerateRegistrationInvoice(ctx context.Context, registrationID string) (*domain.Invoice, error)
	DownloadInvoice(ctx context.Context, invoiceNumber string) ([]byte, error)
	ListActivities(ctx context.Context, transactionID, source string, limit int) ([]*domain.Activity, error)
}
