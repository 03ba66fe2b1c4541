package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/faseops/membership/scheduled-tasks/account/domain"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
)

const (
	accountsCollection = "accounts"

	fieldEmail         = "email"
	fieldStatus        = "status"
	fieldEmailVerified = "emailVerified"
	fieldUpdatedAt     = "updatedAt"
)

// AccountsFirestore is used to interact with member accounts stored on Firestore.
type AccountsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewAccountsFirestore returns a new AccountsFirestore instance with given project id.
func NewAccountsFirestore(ctx context.Context, projectID string) (*AccountsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewAccountsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewAccountsFirestoreWithClient returns a new AccountsFirestore using given client.
func NewAccountsFirestoreWithClient(fun connection.FirestoreFromContextFun) *AccountsFirestore {
	return &AccountsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *AccountsFirestore) accountsRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(accountsCollection)
}

// GetAccount returns a member account by document id.
func (d *AccountsFirestore) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	docSnap, err := d.accountsRef(ctx).Doc(accountID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrAccountNotFound
		}

		return nil, err
	}

	return toAccount(docSnap)
}

// GetAccountByEmail returns the member account registered with the given email.
func (d *AccountsFirestore) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	docSnaps, err := d.accountsRef(ctx).
		Where(fieldEmail, "==", email).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	if len(docSnaps) == 0 {
		return nil, ErrAccountNotFound
	}

	return toAccount(docSnaps[0])
}

// ListAccounts returns every member account.
func (d *AccountsFirestore) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	docSnaps, err := d.accountsRef(ctx).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		account, err := toAccount(docSnap)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

// UpdateStatus writes a new onboarding status on the account.
func (d *AccountsFirestore) UpdateStatus(ctx context.Context, accountID string, accountStatus domain.AccountStatus) error {
	_, err := d.accountsRef(ctx).Doc(accountID).Update(ctx, []firestore.Update{
		{Path: fieldStatus, Value: string(accountStatus)},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrAccountNotFound
		}

		return err
	}

	return nil
}

// SetEmailVerified marks the account's email as verified.
func (d *AccountsFirestore) SetEmailVerified(ctx context.Context, accountID string) error {
	_, err := d.accountsRef(ctx).Doc(accountID).Update(ctx, []firestore.Update{
		{Path: fieldEmailVerified, Value: true},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrAccountNotFound
		}

		return err
	}

	return nil
}

func toAccount(docSnap *firestore.DocumentSnapshot) (*domain.Account, error) {
	var account domain.Account

	if err := docSnap.DataTo(&account); err != nil {
		return nil, err
	}

	account.ID = docSnap.Ref.ID

	return &account, nil
}
