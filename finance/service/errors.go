package service

import "errors"

var (
	ErrInvalidInvoiceInput      = errors.New("missing required invoice field")
	ErrEmptyLineItems           = errors.New("invoice requires at least one line item")
	ErrInvalidLineItem          = errors.New("line item requires a description and a positive quantity")
	ErrInvoiceNumberExhausted   = errors.New("could not allocate a free invoice number")
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrRegistrationNotFound     = errors.New("registration not found")
	ErrRegistrationNotConfirmed = errors.New("registration is not paid or confirmed")
)
