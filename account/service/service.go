package service

import (
	"context"
	"errors"

	"github.com/faseops/membership/scheduled-tasks/account/dal"
	"github.com/faseops/membership/scheduled-tasks/account/domain"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/logger"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidAccountStatus = errors.New("invalid account status")
)

// AccountService reads and administers member accounts.
type AccountService struct {
	loggerProvider logger.Provider
	accountsDAL    dal.Accounts
}

func NewAccountService(loggerProvider logger.Provider, conn *connection.Connection) *AccountService {
	return &AccountService{
		loggerProvider,
		dal.NewAccountsFirestoreWithClient(conn.Firestore),
	}
}

// NewAccountServiceWithDAL is used by tests to substitute a fake DAL.
func NewAccountServiceWithDAL(loggerProvider logger.Provider, accountsDAL dal.Accounts) *AccountService {
	return &AccountService{
		loggerProvider,
		accountsDAL,
	}
}

func (s *AccountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountsDAL.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, dal.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// ListAccounts returns the accounts matching the filter. Empty filters match
// every account that has a non-empty email.
func (s *AccountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	accounts, err := s.accountsDAL.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Account, 0, len(accounts))

	for _, account := range accounts {
		if filter.Matches(account) {
			filtered = append(filtered, account)
		}
	}

	return filtered, nil
}

// UpdateStatus applies an admin status change to the account.
func (s *AccountService) UpdateStatus(ctx context.Context, accountID string, status domain.AccountStatus) error {
	l := s.loggerProvider(ctx)

	if !status.IsValid() {
		return ErrInvalidAccountStatus
	}

	if err := s.accountsDAL.UpdateStatus(ctx, accountID, status); err != nil {
		if errors.Is(err, dal.ErrAccountNotFound) {
			return ErrAccountNotFound
		}

		return err
	}

	l.SetLabel(logger.LabelAccountID, accountID)
	l.Infof("account %s status set to %s", accountID, status)

	return nil
}
