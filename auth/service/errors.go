package service

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrCodeInvalid  = errors.New("verification code is invalid or expired")
)
