package services

import "errors"

// Failure categories shared by every service. Handlers translate these to
// HTTP statuses at the edge; inside the service layer they are plain
// sentinel errors wrapped with context via %w.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
)
