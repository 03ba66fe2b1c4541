package dal

import "errors"

var (
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrNotEligibleForCheckIn = errors.New("registration is not eligible for check-in")
	ErrInvoiceNumberMismatch = errors.New("invoice number does not match stored registration")
)
