package domain

import "errors"

// ErrInvalidParameter is matched by every InvalidParameterError via errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports a parameter constraint violation. Error returns
// Message unchanged so callers can show it to the user verbatim.
type InvalidParameterError struct {
	Message string
}

// NewInvalidParameterError creates an InvalidParameterError with the given message.
func NewInvalidParameterError(message string) *InvalidParameterError {
	return &InvalidParameterError{Message: message}
}

func (e *InvalidParameterError) Error() string { return e.Message }

// Is reports whether target is ErrInvalidParameter.
func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }
