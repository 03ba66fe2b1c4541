package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/faseops/membership/scheduled-tasks/account/dal"
	"github.com/faseops/membership/scheduled-tasks/account/dal/mocks"
	"github.com/faseops/membership/scheduled-tasks/account/domain"
	"github.com/faseops/membership/scheduled-tasks/account/service"
	testTools "github.com/faseops/membership/scheduled-tasks/common/test_tools"
	"github.com/faseops/membership/scheduled-tasks/logger"
)

func newAccountsHandler(accountsDAL *mocks.Accounts) *Accounts {
	return &Accounts{
		loggerProvider: logger.FromContext,
		service:        service.NewAccountServiceWithDAL(logger.FromContext, accountsDAL),
	}
}

func TestAccounts_GetAccountHandler(t *testing.T) {
	t.Run("missing account id", func(t *testing.T) {
		h := newAccountsHandler(&mocks.Accounts{})

		ctx := testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{}, nil)

		if err := h.GetAccountHandler(ctx); err == nil {
			t.Error("Accounts.GetAccountHandler() expected error, got nil")
		}
	})

	t.Run("not found", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("GetAccount", mock.AnythingOfType("*gin.Context"), "nope").
			Return(nil, dal.ErrAccountNotFound)

		h := newAccountsHandler(&accountsDAL)

		ctx := testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{}, []gin.Param{
			{Key: "accountID", Value: "nope"},
		})

		if err := h.GetAccountHandler(ctx); err == nil {
			t.Error("Accounts.GetAccountHandler() expected error, got nil")
		}
	})

	t.Run("success get account", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("GetAccount", mock.AnythingOfType("*gin.Context"), "acc-1").
			Return(&domain.Account{ID: "acc-1", Email: "ops@acme.example.com"}, nil)

		h := newAccountsHandler(&accountsDAL)

		ctx := testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{}, []gin.Param{
			{Key: "accountID", Value: "acc-1"},
		})

		if err := h.GetAccountHandler(ctx); err != nil {
			t.Errorf("Accounts.GetAccountHandler() error = %v", err)
		}
	})
}

func TestAccounts_ListAccountsHandler(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "a", Email: "a@example.com", OrganizationType: domain.OrganizationTypeMGA, Status: domain.AccountStatusApproved},
		{ID: "b", Email: "b@example.com", OrganizationType: domain.OrganizationTypeCarrier, Status: domain.AccountStatusPending},
	}

	t.Run("success with comma separated filters", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("ListAccounts", mock.AnythingOfType("*gin.Context")).Return(accounts, nil)

		h := newAccountsHandler(&accountsDAL)

		ctx := testTools.GenerateCtxWithQuery(t, "organizationTypes=MGA,carrier&accountStatuses=approved")

		if err := h.ListAccountsHandler(ctx); err != nil {
			t.Errorf("Accounts.ListAccountsHandler() error = %v", err)
		}
	})
}

func TestAccounts_UpdateStatusHandler(t *testing.T) {
	t.Run("bind json error", func(t *testing.T) {
		h := newAccountsHandler(&mocks.Accounts{})

		ctx := testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{}, []gin.Param{
			{Key: "accountID", Value: "acc-1"},
		})

		if err := h.UpdateStatusHandler(ctx); err == nil {
			t.Error("Accounts.UpdateStatusHandler() expected error, got nil")
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		h := newAccountsHandler(&mocks.Accounts{})

		ctx := testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"status": "suspended"}, []gin.Param{
			{Key: "accountID", Value: "acc-1"},
		})

		if err := h.UpdateStatusHandler(ctx); err == nil {
			t.Error("Accounts.UpdateStatusHandler() expected error, got nil")
		}
	})

	t.Run("success update status", func(t *testing.T) {
		accountsDAL := mocks.Accounts{}
		accountsDAL.On("UpdateStatus", mock.AnythingOfType("*gin.Context"), "acc-1", domain.AccountStatusApproved).
			Return(nil)

		h := newAccountsHandler(&accountsDAL)

		ctx := testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"status": "approved"}, []gin.Param{
			{Key: "accountID", Value: "acc-1"},
		})

		if err := h.UpdateStatusHandler(ctx); err != nil {
			t.Errorf("Accounts.UpdateStatusHandler() error = %v", err)
		}
	})
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"MGA", 1},
		{"MGA,carrier", 2},
		{"MGA, carrier ,", 2},
		{",,", 0},
	}

	for _, tt := range tests {
		if got := splitCommaList(tt.raw); len(got) != tt.want {
			t.Errorf("splitCommaList(%q) = %v, want %d values", tt.raw, got, tt.want)
		}
	}
}
