package otp

import "errors"

var (
	ErrInvalidSecret = errors.New("invalid base32 secret")
	ErrEmptySecret   = errors.New("empty secret")
	ErrInvalidDigits = errors.New("invalid digit count, must be between 6 and 8")
	ErrInvalidPeriod = errors.New("invalid period, must be at least one second")
)
