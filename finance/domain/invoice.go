package domain

import "time"

// InvoiceNumberPrefix identifies invoices issued by this system.
const InvoiceNumberPrefix = "FASE-"

// PaymentKey correlates audit-log entries and invoices with one underlying
// payment event. It is the concatenation of the payment source and the
// gateway transaction id.
func PaymentKey(source, transactionID string) string {
	return source + transactionID
}

type LineItem struct {
	Description string  `firestore:"description" json:"description"`
	Quantity    int64   `firestore:"quantity" json:"quantity"`
	UnitPrice   float64 `firestore:"unitPrice" json:"unitPrice"`
	Total       float64 `firestore:"total" json:"total"`
}

// Invoice is a paid-invoice record. Immutable once created; a regeneration
// creates a new document, never mutates in place.
type Invoice struct {
	ID               string     `firestore:"-" json:"id"`
	InvoiceNumber    string     `firestore:"invoiceNumber" json:"invoiceNumber"`
	PaymentKey       string     `firestore:"paymentKey" json:"paymentKey"`
	OrganizationName string     `firestore:"organizationName" json:"organizationName"`
	LineItems        []LineItem `firestore:"lineItems" json:"lineItems"`
	TotalAmount      float64    `firestore:"totalAmount" json:"totalAmount"`
	PDFURL           string     `firestore:"pdfUrl" json:"pdfUrl"`
	ObjectPath       string     `firestore:"objectPath" json:"-"`
	GeneratedAt      time.Time  `firestore:"generatedAt" json:"generatedAt"`
}
