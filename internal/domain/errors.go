package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyFulfilled = errors.New("donation already fulfilled")
	ErrValidation       = errors.New("invalid input")
	ErrUnauthorized     = errors.New("authentication required")
	ErrForbidden        = errors.New("not allowed")
	ErrConflict         = errors.New("already exists")
)
