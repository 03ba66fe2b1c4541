package service

import "errors"

var (
	ErrEmptyLineItems   = errors.New("checkout session requires at least one line item")
	ErrMissingURLs      = errors.New("success and cancel urls are required")
	ErrInvalidPrice     = errors.New("price data requires a product name and a positive amount")
	ErrCustomerRequired = errors.New("customer id is required")
)
