package delivery

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTransition is the sentinel error for all InvalidTransitionError
// instances. Use errors.Is(err, ErrInvalidTransition) to detect illegal
// workflow moves regardless of the states involved.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError indicates an attempt to move a delivery along an
// edge that is not in the transition table. It carries both the current and
// the attempted status so callers can report exactly what was rejected.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// rejected edge from -> to.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", ErrInvalidTransition, e.From, e.To)
}

// Unwrap returns the sentinel so errors.Is matching works.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ErrSegregationViolated is the sentinel error for all
// SegregationViolationError instances.
var ErrSegregationViolated = errors.New("segregation of duties violated")

// SegregationViolationError indicates that the acting user already performed
// a conflicting step of the same delivery. It carries every broken rule, not
// just the first one, so the caller can report everything at once.
type SegregationViolationError struct {
	Violations []Violation
}

// NewSegregationViolationError creates a SegregationViolationError from the
// full list of broken rules.
func NewSegregationViolationError(violations []Violation) *SegregationViolationError {
	return &SegregationViolationError{Violations: violations}
}

func (e *SegregationViolationError) Error() string {
	rules := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		rules[i] = v.Rule
	}
	return fmt.Sprintf("%s: %s", ErrSegregationViolated, strings.Join(rules, "; "))
}

// Unwrap returns the sentinel so errors.Is matching works.
func (e *SegregationViolationError) Unwrap() error {
	return ErrSegregationViolated
}
