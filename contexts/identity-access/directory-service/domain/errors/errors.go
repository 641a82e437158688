package errors

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidRole      = errors.New("invalid user role")
	ErrInvalidUserInput = errors.New("invalid user input")
	ErrUsernameTaken    = errors.New("username already taken")
)
