package dal

import (
	"context"

	"github.com/faseops/membership/scheduled-tasks/auth/domain"
)

//go:generate mockery --name VerificationCodes --output ./mocks
type VerificationCodes interface {
	Set(ctx context.Context, code *domain.VerificationCode) error
	Get(ctx context.Context, email string) (*domain.VerificationCode, error)
	Consume(ctx context.Context, email, code string) error
}
