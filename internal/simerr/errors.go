package simerr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError rejects a request before any state is touched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// NotFoundError marks an operation referencing an unknown entity.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// StateTransitionError marks an attempt to mutate a session in a state
// that does not allow it.
type StateTransitionError struct {
	Current string
	Attempt string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a %s session", e.Attempt, e.Current)
}

func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func StateTransition(current, attempt string) error {
	return &StateTransitionError{Current: current, Attempt: attempt}
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsStateTransition(err error) bool {
	var e *StateTransitionError
	return errors.As(err, &e)
}

// HTTPStatus maps the error taxonomy to transport-level codes.
func HTTPStatus(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsStateTransition(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
