package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")


	// ErrSearchUnavailable indicates no search client is configured.
	ErrSearchUnavailable = errors.New("search service unavailable")

	// ErrSummaryUnavailable indicates no summariser is configured.
	ErrSummaryUnavailable = errors.New("summary service unavailable")

	// ErrUnknownSetting indicates a settings key that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)

// RemoteError is returned when the remote service answers with a non-success status.
type RemoteError struct {
	// StatusCode is the HTTP status returned.
	StatusCode int

	// Message is the response body, read as plain text.
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("remote error (%d): %s", e.StatusCode, e.Message)
}

// UserMessage returns the text to surface to a user for err.
// Remote failures surface the service's own message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return err.Error()
}
