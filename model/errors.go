package model

import "errors"

// Failure taxonomy shared by usecases and handlers. Handlers translate these
// into HTTP statuses; anything else becomes a generic 500 with no detail.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrDuplicateCategory  = errors.New("category name already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account not verified")
)
