package iface

import (
	"context"

	"github.com/faseops/membership/scheduled-tasks/registration/domain"
	"github.com/faseops/membership/scheduled-tasks/registration/service"
)

//go:generate mockery --name RegistrationService --output ./mocks
type RegistrationService interface {
	UpdateStatus(ctx context.Context, input service.UpdateStatusInput) (*domain.Registration, error)
	CheckIn(ctx context.Context, registrationID string) (*domain.CheckInResult, error)
	Delete(ctx context.Context, input service.DeleteInput) error
}
