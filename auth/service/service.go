package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	firebaseAuth "firebase.google.com/go/v4/auth"

	accountDal "github.com/faseops/membership/scheduled-tasks/account/dal"
	"github.com/faseops/membership/scheduled-tasks/auth/dal"
	"github.com/faseops/membership/scheduled-tasks/auth/domain"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/logger"
	"github.com/faseops/membership/scheduled-tasks/mailer"
)

// FirebaseAuth is the slice of the firebase auth admin client the service
// needs; *firebaseAuth.Client satisfies it.
//
//go:generate mockery --name FirebaseAuth --output ./mocks
type FirebaseAuth interface {
	GetUserByEmail(ctx context.Context, email string) (*firebaseAuth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, update *firebaseAuth.UserToUpdate) (*firebaseAuth.UserRecord, error)
}

// AuthService issues and consumes email verification codes.
type AuthService struct {
	loggerProvider logger.Provider
	codesDAL       dal.VerificationCodes
	accountsDAL    accountDal.Accounts
	sender         mailer.ISender
	firebaseAuth   FirebaseAuth
}

func NewAuthService(loggerProvider logger.Provider, conn *connection.Connection) *AuthService {
	return &AuthService{
		loggerProvider,
		dal.NewVerificationCodesFirestoreWithClient(conn.Firestore),
		accountDal.NewAccountsFirestoreWithClient(conn.Firestore),
		mailer.NewSender(),
		conn.FirebaseAuth(context.Background()),
	}
}

// NewAuthServiceWithDeps is used by tests to substitute fakes.
func NewAuthServiceWithDeps(
	loggerProvider logger.Provider,
	codesDAL dal.VerificationCodes,
	accountsDAL accountDal.Accounts,
	sender mailer.ISender,
	firebaseAuth FirebaseAuth,
) *AuthService {
	return &AuthService{
		loggerProvider,
		codesDAL,
		accountsDAL,
		sender,
		firebaseAuth,
	}
}

// SendVerification issues a fresh 6-digit code for the email, overwriting any
// previous code, and dispatches it by mail. A dispatch failure is logged but
// does not fail the operation: the stored code stays valid for a manual
// resend.
func (s *AuthService) SendVerification(ctx context.Context, email string) (*domain.VerificationCode, error) {
	l := s.loggerProvider(ctx)

	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	code := &domain.VerificationCode{
		Email:     email,
		Code:      generateCode(),
		ExpiresAt: time.Now().UTC().Add(domain.CodeTTL),
		Used:      false,
	}

	if err := s.codesDAL.Set(ctx, code); err != nil {
		return nil, err
	}

	if err := s.sender.SendVerificationCode(&mailer.VerificationCodeNotification{
		Email:     email,
		Code:      code.Code,
		ExpiresIn: "20 minutes",
	}); err != nil {
		l.Errorf("failed to dispatch verification code to %s: %s", email, err)
	}

	return code, nil
}

// VerifyUserEmail consumes the verification code for the account's email and,
// on success, marks the account's email verified both in firestore and on the
// firebase auth user.
func (s *AuthService) VerifyUserEmail(ctx context.Context, accountID, code string) error {
	l := s.loggerProvider(ctx)

	account, err := s.accountsDAL.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if err := s.codesDAL.Consume(ctx, account.Email, code); err != nil {
		switch {
		case errors.Is(err, dal.ErrCodeNotFound),
			errors.Is(err, dal.ErrCodeExpired),
			errors.Is(err, dal.ErrCodeUsed),
			errors.Is(err, dal.ErrCodeMismatch):
			return ErrCodeInvalid
		}

		return err
	}

	if err := s.accountsDAL.SetEmailVerified(ctx, accountID); err != nil {
		return err
	}

	user, err := s.firebaseAuth.GetUserByEmail(ctx, account.Email)
	if err != nil {
		l.Errorf("failed to resolve firebase user for %s: %s", account.Email, err)
		return nil
	}

	if _, err := s.firebaseAuth.UpdateUser(ctx, user.UID, (&firebaseAuth.UserToUpdate{}).EmailVerified(true)); err != nil {
		l.Errorf("failed to mark firebase user %s verified: %s", user.UID, err)
	}

	return nil
}

// generateCode returns a uniformly random 6-digit numeric code.
func generateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken.
		panic(err)
	}

	return fmt.Sprintf("%06d", n.Int64())
}
