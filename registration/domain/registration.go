package domain

import "time"

// PaymentStatus is the payment state of a rendezvous registration.
type PaymentStatus string

const (
	PaymentStatusPendingBankTransfer PaymentStatus = "pending_bank_transfer"
	PaymentStatusPaid                PaymentStatus = "paid"
	PaymentStatusConfirmed           PaymentStatus = "confirmed"
)

// IsValid reports whether s is one of the closed set of payment statuses.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPendingBankTransfer, PaymentStatusPaid, PaymentStatusConfirmed:
		return true
	}

	return false
}

// Eligible reports whether a registration in this payment state may be
// checked in.
func (s PaymentStatus) Eligible() bool {
	return s == PaymentStatusPaid || s == PaymentStatusConfirmed
}

// Status is the coarse registration state derived from the payment status.
type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
)

// DeriveStatus maps a payment status onto the coarse registration status.
func DeriveStatus(s PaymentStatus) Status {
	if s == PaymentStatusPaid || s == PaymentStatusConfirmed {
		return StatusConfirmed
	}

	return StatusPendingPayment
}

type BillingInfo struct {
	Company          string `firestore:"company" json:"company"`
	Country          string `firestore:"country" json:"country"`
	OrganizationType string `firestore:"organizationType" json:"organizationType"`
}

type Attendee struct {
	FirstName string `firestore:"firstName" json:"firstName"`
	LastName  string `firestore:"lastName" json:"lastName"`
	Email     string `firestore:"email" json:"email"`
	JobTitle  string `firestore:"jobTitle" json:"jobTitle"`
}

type Pricing struct {
	PricePerTicket float64 `firestore:"pricePerTicket" json:"pricePerTicket"`
	Subtotal       float64 `firestore:"subtotal" json:"subtotal"`
	VATRate        float64 `firestore:"vatRate" json:"vatRate"`
	VATAmount      float64 `firestore:"vatAmount" json:"vatAmount"`
	TotalPrice     float64 `firestore:"totalPrice" json:"totalPrice"`
	Discount       float64 `firestore:"discount" json:"discount"`
}

// Registration is a rendezvous event registration. RegistrationID is the
// caller-supplied business key; ID is the firestore document id and stays
// internal.
type Registration struct {
	ID             string        `firestore:"-" json:"-"`
	RegistrationID string        `firestore:"registrationId" json:"registrationId"`
	InvoiceNumber  string        `firestore:"invoiceNumber" json:"invoiceNumber"`
	BillingInfo    BillingInfo   `firestore:"billingInfo" json:"billingInfo"`
	Attendees      []Attendee    `firestore:"attendees" json:"attendees"`
	Pricing        Pricing       `firestore:"pricing" json:"pricing"`
	PaymentStatus  PaymentStatus `firestore:"paymentStatus" json:"paymentStatus"`
	Status         Status        `firestore:"status" json:"status"`
	ConfirmedAt    *time.Time    `firestore:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	CheckedInAt    *time.Time    `firestore:"checkedInAt,omitempty" json:"checkedInAt,omitempty"`
	CheckedInCount int           `firestore:"checkedInCount,omitempty" json:"checkedInCount,omitempty"`
	CreatedAt      time.Time     `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt      time.Time     `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

// FirstAttendee returns the attendee shown on the check-in badge.
func (r *Registration) FirstAttendee() *Attendee {
	if len(r.Attendees) == 0 {
		return nil
	}

	return &r.Attendees[0]
}

// CheckInResult is the attendee snapshot returned by a check-in, identical
// for the first and every repeated call.
type CheckInResult struct {
	RegistrationID   string     `json:"registrationId"`
	Attendee         *Attendee  `json:"attendee,omitempty"`
	AttendeeCount    int        `json:"attendeeCount"`
	CheckedInAt      *time.Time `json:"checkedInAt"`
	AlreadyCheckedIn bool       `json:"alreadyCheckedIn"`
}
