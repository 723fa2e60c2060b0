package ticktick

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by *Error when the service answers 404.
// Callers that treat deletion as idempotent check for it with errors.Is.
var ErrNotFound = errors.New("not found")

// Error represents a failed remote call.
type Error struct {
	// Op is the operation that failed (e.g., "listProjects", "deleteTask")
	Op string

	// Status is the HTTP status of the response, or 0 if the call failed
	// before a response arrived (transport or decode failure)
	Status int

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("ticktick %s (status %d): %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("ticktick %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusOf extracts the HTTP status from an error chain, or 0 when the
// error did not originate from an HTTP response.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
