package dal

import (
	"context"

	"github.com/faseops/membership/scheduled-tasks/account/domain"
)

//go:generate mockery --name Accounts --output ./mocks
type Accounts interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	UpdateStatus(ctx context.Context, accountID string, status domain.AccountStatus) error
	SetEmailVerified(ctx context.Context, accountID string) error
}
