package store

import "errors"

// ErrNotFound is returned (wrapped) when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports input a write path refuses to store. Message is
// safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
