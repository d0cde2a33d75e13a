package workings

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkingNotFound is returned when the requested working does not exist.
	ErrWorkingNotFound = errors.New("working not found")
	// ErrForbidden is returned when a user changes a working they did not submit.
	ErrForbidden = errors.New("only the author can change this working")
)

// ValidationError reports a request parameter that was missing or malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{
		Field:   field,
		Message: msg,
	}
}
