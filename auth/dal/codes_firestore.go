package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/faseops/membership/scheduled-tasks/auth/domain"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
)

const (
	verificationCodesCollection = "verificationCodes"

	fieldUsed = "used"
)

// VerificationCodesFirestore stores verification codes keyed by email, so a
// resend overwrites the previous code.
type VerificationCodesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewVerificationCodesFirestoreWithClient returns a new VerificationCodesFirestore using given client.
func NewVerificationCodesFirestoreWithClient(fun connection.FirestoreFromContextFun) *VerificationCodesFirestore {
	return &VerificationCodesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *VerificationCodesFirestore) codeRef(ctx context.Context, email string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(verificationCodesCollection).Doc(email)
}

// Set writes the code for the email, replacing any previous one.
func (d *VerificationCodesFirestore) Set(ctx context.Context, code *domain.VerificationCode) error {
	_, err := d.codeRef(ctx, code.Email).Set(ctx, code)
	return err
}

// Get returns the currently stored code for the email.
func (d *VerificationCodesFirestore) Get(ctx context.Context, email string) (*domain.VerificationCode, error) {
	docSnap, err := d.codeRef(ctx, email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCodeNotFound
		}

		return nil, err
	}

	var code domain.VerificationCode

	if err := docSnap.DataTo(&code); err != nil {
		return nil, err
	}

	return &code, nil
}

// Consume validates the supplied code and marks it used, all inside a
// transaction so a code is consumed at most once.
func (d *VerificationCodesFirestore) Consume(ctx context.Context, email, code string) error {
	docRef := d.codeRef(ctx, email)

	return d.firestoreClientFun(ctx).RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrCodeNotFound
			}

			return err
		}

		var stored domain.VerificationCode

		if err := docSnap.DataTo(&stored); err != nil {
			return err
		}

		if stored.Used {
			return ErrCodeUsed
		}

		if stored.Expired(time.Now().UTC()) {
			return ErrCodeExpired
		}

		if stored.Code != code {
			return ErrCodeMismatch
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: fieldUsed, Value: true},
		})
	}, firestore.MaxAttempts(10))
}
