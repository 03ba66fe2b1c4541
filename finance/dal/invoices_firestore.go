package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/faseops/membership/scheduled-tasks/finance/domain"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
)

const (
	paidInvoicesCollection = "paidInvoices"

	fieldInvoiceNumber = "invoiceNumber"
)

// InvoicesFirestore is used to interact with paid-invoice records stored on Firestore.
type InvoicesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewInvoicesFirestoreWithClient returns a new InvoicesFirestore using given client.
func NewInvoicesFirestoreWithClient(fun connection.FirestoreFromContextFun) *InvoicesFirestore {
	return &InvoicesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *InvoicesFirestore) invoicesRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(paidInvoicesCollection)
}

// CreateInvoice writes a new invoice record under a fresh document id and
// returns that id. Records are never mutated: regeneration creates a new one.
func (d *InvoicesFirestore) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (string, error) {
	docRef := d.invoicesRef(ctx).NewDoc()

	if _, err := docRef.Create(ctx, invoice); err != nil {
		return "", err
	}

	return docRef.ID, nil
}

// GetInvoiceByNumber returns the invoice with the given invoice number.
func (d *InvoicesFirestore) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	docSnaps, err := d.invoicesRef(ctx).
		Where(fieldInvoiceNumber, "==", invoiceNumber).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	if len(docSnaps) == 0 {
		return nil, ErrInvoiceNotFound
	}

	var invoice domain.Invoice

	if err := docSnaps[0].DataTo(&invoice); err != nil {
		return nil, err
	}

	invoice.ID = docSnaps[0].Ref.ID

	return &invoice, nil
}

// InvoiceNumberExists reports whether an invoice was already issued under the
// given number.
func (d *InvoicesFirestore) InvoiceNumberExists(ctx context.Context, invoiceNumber string) (bool, error) {
	docSnaps, err := d.invoicesRef(ctx).
		Where(fieldInvoiceNumber, "==", invoiceNumber).
		Limit(1).
		Select().
		Documents(ctx).GetAll()
	if err != nil {
		return false, err
	}

	return len(docSnaps) > 0, nil
}
