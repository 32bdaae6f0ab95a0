package llm

import "errors"

var (
	// ErrUnavailable indicates the reasoning model service is unreachable.
	ErrUnavailable = errors.New("model service unavailable")

	// ErrTimeout indicates the model request exceeded the configured timeout.
	ErrTimeout = errors.New("model request timed out")
)
