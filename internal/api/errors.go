package api

import "fmt"

// Error represents a failed backend call: a non-2xx response or a
// transport failure. Status is zero when the request never reached the
// server.
type Error struct {
	Operation string
	Status    int
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("%s failed: HTTP %d: %s", e.Operation, e.Status, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s failed: %v", e.Operation, e.Cause)
	default:
		return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// AuthError indicates the call needs a valid auth token and none is
// available: the token is missing, expired, or was rejected by the
// backend. The stored token has already been cleared by the time this is
// returned; the user must log in again and re-invoke the action.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication required: %s", e.Reason)
}

// NotFoundError indicates the addressed resource does not exist, e.g. an
// invalid share link.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}
