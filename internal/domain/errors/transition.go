package errors

import (
	"fmt"
	"net/http"
)

// InvalidTransitionError is returned by state-machine methods when the
// requested transition is not an edge of the state graph.
type InvalidTransitionError struct {
	From   string
	To     string
	Reason string
}

// NewInvalidTransitionError creates a transition error with an optional reason.
func NewInvalidTransitionError(from, to, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Reason: reason}
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *InvalidTransitionError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InvalidTransitionError) ErrorCode() string {
	return "INVALID_TRANSITION"
}

// Message returns the reason when one is set, otherwise a generic description.
func (e *InvalidTransitionError) Message() string {
	if e.Reason != "" {
		return e.Reason
	}

	return fmt.Sprintf("Cannot transition from %s to %s", e.From, e.To)
}

// Details returns the transition edge that was rejected.
func (e *InvalidTransitionError) Details() string {
	return fmt.Sprintf("%s -> %s", e.From, e.To)
}
