package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel error for all ConflictError instances.
// It signals that a concurrent transition won the per-aggregate version
// check or the per-lot conditional decrement; the caller should retry
// from a fresh read.
var ErrConflict = errors.New("concurrent update conflict")

// ConflictError indicates that an optimistic update affected zero rows
// because another transaction changed the same aggregate or lot first.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping a lower-level cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s", ErrConflict, e.ParamName, e.ID))
}

// Unwrap returns the sentinel so errors.Is matching works.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
