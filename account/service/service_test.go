package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/faseops/membership/scheduled-tasks/account/dal"
	"github.com/faseops/membership/scheduled-tasks/account/dal/mocks"
	"github.com/faseops/membership/scheduled-tasks/account/domain"
	"github.com/faseops/membership/scheduled-tasks/logger"
	loggerMocks "github.com/faseops/membership/scheduled-tasks/logger/mocks"
)

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

func TestAccountService_GetAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("GetAccount", ctx, "acc-1").
			Return(&domain.Account{ID: "acc-1", Email: "ops@acme.example.com"}, nil)

		s := NewAccountServiceWithDAL(testLoggerProvider(), &accountsDAL)

		account, err := s.GetAccount(ctx, "acc-1")

		assert.NoError(t, err)
		assert.Equal(t, "acc-1", account.ID)
	})

	t.Run("not found", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("GetAccount", ctx, "nope").Return(nil, dal.ErrAccountNotFound)

		s := NewAccountServiceWithDAL(testLoggerProvider(), &accountsDAL)

		account, err := s.GetAccount(ctx, "nope")

		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Nil(t, account)
	})
}

func TestAccountService_ListAccounts(t *testing.T) {
	ctx := context.Background()

	accounts := []*domain.Account{
		{ID: "a", Email: "a@example.com", OrganizationType: domain.OrganizationTypeMGA, Status: domain.AccountStatusApproved},
		{ID: "b", Email: "b@example.com", OrganizationType: domain.OrganizationTypeCarrier, Status: domain.AccountStatusPending},
		{ID: "c", Email: "", OrganizationType: domain.OrganizationTypeMGA, Status: domain.AccountStatusApproved},
	}

	t.Run("empty filter drops only accounts without email", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("ListAccounts", ctx).Return(accounts, nil)

		s := NewAccountServiceWithDAL(testLoggerProvider(), &accountsDAL)

		got, err := s.ListAccounts(ctx, domain.AccountFilter{})

		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("filter narrows by organization type and status", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("ListAccounts", ctx).Return(accounts, nil)

		s := NewAccountServiceWithDAL(testLoggerProvider(), &accountsDAL)

		got, err := s.ListAccounts(ctx, domain.AccountFilter{
			OrganizationTypes: []domain.OrganizationType{domain.OrganizationTypeMGA},
			AccountStatuses:   []domain.AccountStatus{domain.AccountStatusApproved},
		})

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
	})

	t.Run("dal failure is propagated", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("ListAccounts", ctx).Return(nil, errors.New("deadline exceeded"))

		s := NewAccountServiceWithDAL(testLoggerProvider(), &accountsDAL)

		got, err := s.ListAccounts(ctx, domain.AccountFilter{})

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestAccountService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("valid status is applied", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("UpdateStatus", ctx, "acc-1", domain.AccountStatusApproved).Return(nil)

		s := NewAccountServiceWithDAL(testLoggerProvider(), &accountsDAL)

		assert.NoError(t, s.UpdateStatus(ctx, "acc-1", domain.AccountStatusApproved))
	})

	t.Run("unknown status is rejected before the dal", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}

		s := NewAccountServiceWithDAL(testLoggerProvider(), &accountsDAL)

		err := s.UpdateStatus(ctx, "acc-1", domain.AccountStatus("suspended"))

		assert.ErrorIs(t, err, ErrInvalidAccountStatus)
		accountsDAL.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("UpdateStatus", ctx, "nope", domain.AccountStatusAdmin).
			Return(dal.ErrAccountNotFound)

		s := NewAccountServiceWithDAL(testLoggerProvider(), &accountsDAL)

		assert.ErrorIs(t, s.UpdateStatus(ctx, "nope", domain.AccountStatusAdmin), ErrAccountNotFound)
	})
}
