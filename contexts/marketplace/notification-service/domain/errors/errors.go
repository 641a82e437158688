package errors

import "errors"

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrNotificationForbidden = errors.New("notification belongs to another user")
	ErrInvalidDispatchInput  = errors.New("invalid notification dispatch input")
)
