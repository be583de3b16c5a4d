// File: internal/services/media/errors.go
package media

import "fmt"

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type MediaError struct {
	Type    ErrorType
	Code    int
	Message string
	Cause   error
}

func (e *MediaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("media %s error: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("media %s error: %s", e.Type, e.Message)
}

func (e *MediaError) Unwrap() error { return e.Cause }
