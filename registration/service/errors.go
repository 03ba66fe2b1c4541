package service

import "errors"

var (
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrIllegalTransition     = errors.New("payment status transition is not allowed")
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrNotEligibleForCheckIn = errors.New("registration must be paid or confirmed before check-in")
	ErrDeleteNotConfirmed    = errors.New("delete confirmation phrase does not match")
	ErrInvoiceNumberMismatch = errors.New("invoice number does not match stored registration")
)
