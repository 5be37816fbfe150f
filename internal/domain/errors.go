package domain

import "errors"

// Sentinel errors returned by repositories and services. Controllers match
// them with errors.Is to pick the HTTP status.
var (
	// ErrNotFound indicates the requested activity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadySignedUp indicates a duplicate signup for the same activity.
	ErrAlreadySignedUp = errors.New("already signed up")
	// ErrNotRegistered indicates an unregister for an email that is not on
	// the activity's roster.
	ErrNotRegistered = errors.New("not registered")
	// ErrInvalidInput indicates a request that fails basic validation.
	ErrInvalidInput = errors.New("invalid input")
)
