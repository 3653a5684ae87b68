package service

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrItemStyleSize = errors.New("each item must have style and size")
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email format")

	// ErrBadSignature marks a webhook whose signature does not verify against
	// the configured secret. Redelivery cannot succeed without a config fix.
	ErrBadSignature = errors.New("webhook signature verification failed")
)
