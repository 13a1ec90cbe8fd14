package domain

import "errors"

// Sentinel errors shared across repositories and services.
// Controllers map these to HTTP status codes at the delivery boundary.
var (
	ErrNotFound           = errors.New("not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDuplicateEmail     = errors.New("email already in use")
)
