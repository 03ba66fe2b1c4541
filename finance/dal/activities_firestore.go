package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/faseops/membership/scheduled-tasks/finance/domain"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
)

const (
	paymentActivitiesCollection = "paymentActivities"

	fieldPaymentKey = "paymentKey"
	fieldCreatedAt  = "createdAt"

	defaultActivitiesLimit = 50
)

// ActivitiesFirestore is used to interact with the payment activity log stored on Firestore.
type ActivitiesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewActivitiesFirestoreWithClient returns a new ActivitiesFirestore using given client.
func NewActivitiesFirestoreWithClient(fun connection.FirestoreFromContextFun) *ActivitiesFirestore {
	return &ActivitiesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *ActivitiesFirestore) activitiesRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(paymentActivitiesCollection)
}

// CreateActivity appends a new activity entry and returns its document id.
// Entries are append-only.
func (d *ActivitiesFirestore) CreateActivity(ctx context.Context, activity *domain.Activity) (string, error) {
	docRef := d.activitiesRef(ctx).NewDoc()

	if _, err := docRef.Create(ctx, activity); err != nil {
		return "", err
	}

	return docRef.ID, nil
}

// ListActivities returns up to limit activity entries for the given payment
// key, newest first. A non-positive limit falls back to the default.
func (d *ActivitiesFirestore) ListActivities(ctx context.Context, paymentKey string, limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = defaultActivitiesLimit
	}

	docSnaps, err := d.activitiesRef(ctx).
		Where(fieldPaymentKey, "==", paymentKey).
		OrderBy(fieldCreatedAt, firestore.Desc).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	activities := make([]*domain.Activity, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		var activity domain.Activity

		if err := docSnap.DataTo(&activity); err != nil {
			return nil, err
		}

		activity.ID = docSnap.Ref.ID

		activities = append(activities, &activity)
	}

	return activities, nil
}
