package errors

import "errors"

var (
	ErrLoginRequired   = errors.New("login required")
	ErrNoTokenReturned = errors.New("no token returned")
	ErrValidation      = errors.New("validation failed")
	ErrStaleResponse   = errors.New("stale response")
	ErrNotFound        = errors.New("not found")
)
