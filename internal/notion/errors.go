package notion

import "errors"

var (
	// ErrUnavailable indicates the hosted store could not be reached.
	ErrUnavailable = errors.New("notion unavailable")

	// ErrTimeout indicates a remote call exceeded the configured timeout.
	ErrTimeout = errors.New("notion request timed out")

	// ErrNotFound indicates no record exists under the given id.
	ErrNotFound = errors.New("record not found")
)
