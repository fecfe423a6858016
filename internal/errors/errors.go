package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
// The wrapped error remains reachable via errors.Unwrap.
func Wrap(err error, msg string, v ...interface{}) error {
	if err == nil {
		return nil
	}
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(e error) error {
	return notFound{fmt.Sprintf("Not found: %v", e)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	var nf notFound
	return errors.As(err, &nf)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidation checks if the given error is a validation error.
func IsValidation(err error) bool {
	var ve validationError
	return errors.As(err, &ve)
}

// persistenceError is raised when a deck cannot be written to its
// destination.
type persistenceError struct {
	path string
	err  error
}

func (p persistenceError) Error() string {
	return fmt.Sprintf("failed to save %q: %v", p.path, p.err)
}

func (p persistenceError) Unwrap() error {
	return p.err
}

// NewPersistenceError marks err as a failure to write path.
func NewPersistenceError(path string, err error) error {
	return persistenceError{path: path, err: err}
}

// IsPersistence checks if the given error is a persistence failure.
func IsPersistence(err error) bool {
	var pe persistenceError
	return errors.As(err, &pe)
}
