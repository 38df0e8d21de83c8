package services

import (
	"errors"
)

// Sentinel errors the handler layer maps to HTTP statuses. Persistence
// failures are returned as plain wrapped errors and treated as fatal for the
// request; they are never retried here.
var (
	ErrNotFound             = errors.New("not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrDuplicateApplication = errors.New("you have already applied to this opportunity")
)
