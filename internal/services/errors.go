package services

import "errors"

// Sentinel errors shared across services. Handlers translate these into
// API error codes; anything else is surfaced as a system error.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrInvalidInput       = errors.New("invalid input")
)
