package dal

import "errors"

var (
	ErrCodeNotFound = errors.New("verification code not found")
	ErrCodeExpired  = errors.New("verification code expired")
	ErrCodeUsed     = errors.New("verification code already used")
	ErrCodeMismatch = errors.New("verification code does not match")
)
