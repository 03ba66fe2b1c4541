package domain

import "time"

// Activity types recorded on the payment audit trail.
const (
	ActivityTypeInvoiceGenerated = "invoice_generated"
	ActivityTypeStatusChanged    = "status_changed"
)

// Activity is one append-only audit record keyed by payment key.
type Activity struct {
	ID          string                 `firestore:"-" json:"id"`
	PaymentKey  string                 `firestore:"paymentKey" json:"paymentKey"`
	Type        string                 `firestore:"type" json:"type"`
	Title       string                 `firestore:"title" json:"title"`
	Description string                 `firestore:"description" json:"description"`
	PerformedBy string                 `firestore:"performedBy" json:"performedBy"`
	Metadata    map[string]interface{} `firestore:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time              `firestore:"createdAt" json:"createdAt"`
}
