// File: internal/services/messaging/errors.go
package messaging

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeValidation  ErrorType = "VALIDATION"
	ErrTypeUpstream    ErrorType = "UPSTREAM"
	ErrTypePersistence ErrorType = "PERSISTENCE"
	ErrTypeNotFound    ErrorType = "NOT_FOUND"
)

// Error carries the messaging core's taxonomy: validation failures have no
// side effects, upstream failures abort before persistence, persistence
// failures may leave a message without a synchronized snapshot.
type Error struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("messaging %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("messaging %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func NewValidationError(operation, msg string) *Error {
	return &Error{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewUpstreamError(operation, msg string, cause error) *Error {
	return &Error{Type: ErrTypeUpstream, Operation: operation, Message: msg, Cause: cause}
}

func NewPersistenceError(operation, msg string, cause error) *Error {
	return &Error{Type: ErrTypePersistence, Operation: operation, Message: msg, Cause: cause}
}

func NewNotFoundError(operation, msg string) *Error {
	return &Error{Type: ErrTypeNotFound, Operation: operation, Message: msg}
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

func IsValidation(err error) bool  { return isType(err, ErrTypeValidation) }
func IsUpstream(err error) bool    { return isType(err, ErrTypeUpstream) }
func IsPersistence(err error) bool { return isType(err, ErrTypePersistence) }
func IsNotFound(err error) bool    { return isType(err, ErrTypeNotFound) }
