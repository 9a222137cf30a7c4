package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// RejectedError is returned when the stats backend answers a write with a
// non-success status. Message is the response body as sent by the backend.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request with status %d", e.StatusCode)
	}
	return e.Message
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrInvalidInput && e.StatusCode >= 400 && e.StatusCode < 500
}

// userMessage extracts the text shown to the user for a failed action.
func userMessage(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Error()
	}
	return err.Error()
}
