package errors

import "errors"

var (
	ErrQuoteNotFound          = errors.New("quote request not found")
	ErrQuoteAlreadyExists     = errors.New("quote request already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrIncompleteEventDetails = errors.New("incomplete private event details")
	ErrInvalidStatusValue     = errors.New("invalid status value")
	ErrInvalidStateTransition = errors.New("invalid quote status transition")
	ErrForbidden              = errors.New("operation not allowed for this actor")
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	ErrIdempotencyKeyConflict = errors.New("idempotency key conflict")
)
