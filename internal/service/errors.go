package service

import "errors"

// Sentinel errors the handlers translate into HTTP status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("user already exists with this email")
)
