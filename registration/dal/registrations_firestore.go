package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/faseops/membership/scheduled-tasks/framework/connection"
	"github.com/faseops/membership/scheduled-tasks/registration/domain"
)

const (
	registrationsCollection = "rendezvousRegistrations"

	fieldRegistrationID = "registrationId"
	fieldPaymentStatus  = "paymentStatus"
	fieldStatus         = "status"
	fieldConfirmedAt    = "confirmedAt"
	fieldCheckedInAt    = "checkedInAt"
	fieldCheckedInCount = "checkedInCount"
	fieldInvoiceNumber  = "invoiceNumber"
	fieldUpdatedAt      = "updatedAt"
)

// RegistrationsFirestore is used to interact with rendezvous registrations stored on Firestore.
type RegistrationsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewRegistrationsFirestore returns a new RegistrationsFirestore instance with given project id.
func NewRegistrationsFirestore(ctx context.Context, projectID string) (*RegistrationsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewRegistrationsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewRegistrationsFirestoreWithClient returns a new RegistrationsFirestore using given client.
func NewRegistrationsFirestoreWithClient(fun connection.FirestoreFromContextFun) *RegistrationsFirestore {
	return &RegistrationsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *RegistrationsFirestore) registrationsRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(registrationsCollection)
}

// GetByRegistrationID resolves a registration by its business key.
func (d *RegistrationsFirestore) GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Registration, error) {
	docSnaps, err := d.registrationsRef(ctx).
		Where(fieldRegistrationID, "==", registrationID).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	if len(docSnaps) == 0 {
		return nil, ErrRegistrationNotFound
	}

	return toRegistration(docSnaps[0])
}

// GetByDocID resolves a registration by the firestore document id.
func (d *RegistrationsFirestore) GetByDocID(ctx context.Context, docID string) (*domain.Registration, error) {
	docSnap, err := d.registrationsRef(ctx).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrRegistrationNotFound
		}

		return nil, err
	}

	return toRegistration(docSnap)
}

// SetPaymentStatus writes the payment status, the derived coarse status and
// optionally the confirmation timestamp.
func (d *RegistrationsFirestore) SetPaymentStatus(
	ctx context.Context,
	docID string,
	paymentStatus domain.PaymentStatus,
	coarseStatus domain.Status,
	confirmedAt *time.Time,
) error {
	updates := []firestore.Update{
		{Path: fieldPaymentStatus, Value: string(paymentStatus)},
		{Path: fieldStatus, Value: string(coarseStatus)},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	}

	if confirmedAt != nil {
		updates = append(updates, firestore.Update{Path: fieldConfirmedAt, Value: *confirmedAt})
	}

	_, err := d.registrationsRef(ctx).Doc(docID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrRegistrationNotFound
		}

		return err
	}

	return nil
}

// CheckIn stamps checkedInAt exactly once. The conditional write runs inside
// a transaction so two concurrent check-ins of the same registration cannot
// both take the latch. The second return value reports whether the
// registration was already checked in.
func (d *RegistrationsFirestore) CheckIn(ctx context.Context, docID string) (*domain.Registration, bool, error) {
	docRef := d.registrationsRef(ctx).Doc(docID)

	var (
		registration     *domain.Registration
		alreadyCheckedIn bool
	)

	err := d.firestoreClientFun(ctx).RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrRegistrationNotFound
			}

			return err
		}

		reg, err := toRegistration(docSnap)
		if err != nil {
			return err
		}

		if reg.CheckedInAt != nil {
			registration = reg
			alreadyCheckedIn = true

			return nil
		}

		if !reg.PaymentStatus.Eligible() {
			return ErrNotEligibleForCheckIn
		}

		now := time.Now().UTC()
		count := len(reg.Attendees)

		if err := tx.Update(docRef, []firestore.Update{
			{Path: fieldCheckedInAt, Value: now},
			{Path: fieldCheckedInCount, Value: count},
			{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
		}); err != nil {
			return err
		}

		reg.CheckedInAt = &now
		reg.CheckedInCount = count
		registration = reg

		return nil
	}, firestore.MaxAttempts(10))
	if err != nil {
		return nil, false, err
	}

	return registration, alreadyCheckedIn, nil
}

// SetInvoiceNumber records the invoice issued for the registration.
func (d *RegistrationsFirestore) SetInvoiceNumber(ctx context.Context, docID string, invoiceNumber string) error {
	_, err := d.registrationsRef(ctx).Doc(docID).Update(ctx, []firestore.Update{
		{Path: fieldInvoiceNumber, Value: invoiceNumber},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrRegistrationNotFound
		}

		return err
	}

	return nil
}

// Delete removes a registration document. When invoiceNumber is non-empty it
// must match the stored value, guarding against deleting the wrong record.
func (d *RegistrationsFirestore) Delete(ctx context.Context, docID string, invoiceNumber string) error {
	docRef := d.registrationsRef(ctx).Doc(docID)

	return d.firestoreClientFun(ctx).RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrRegistrationNotFound
			}

			return err
		}

		reg, err := toRegistration(docSnap)
		if err != nil {
			return err
		}

		if invoiceNumber != "" && reg.InvoiceNumber != invoiceNumber {
			return ErrInvoiceNumberMismatch
		}

		return tx.Delete(docRef)
	}, firestore.MaxAttempts(10))
}

// ListAll returns every registration. Used by event stats aggregation; the
// collection is bounded by event capacity.
func (d *RegistrationsFirestore) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	docSnaps, err := d.registrationsRef(ctx).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	registrations := make([]*domain.Registration, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		registration, err := toRegistration(docSnap)
		if err != nil {
			return nil, err
		}

		registrations = append(registrations, registration)
	}

	return registrations, nil
}

func toRegistration(docSnap *firestore.DocumentSnapshot) (*domain.Registration, error) {
	var registration domain.Registration

	if err := docSnap.DataTo(&registration); err != nil {
		return nil, err
	}

	registration.ID = docSnap.Ref.ID

	return &registration, nil
}
