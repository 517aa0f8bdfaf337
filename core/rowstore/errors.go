package rowstore

import (
	"errors"
	"fmt"
)

// TimeoutError indicates the per-attempt wall-clock timeout fired on every
// attempt, including retries.
type TimeoutError struct {
	// Attempts is the total number of attempts made before giving up.
	Attempts int
}

func (e *TimeoutError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("row store: request timed out after %d attempts", e.Attempts)
	}
	return "row store: request timed out"
}

// NetworkError indicates a transport-level failure (DNS, connection reset,
// TLS) below the HTTP layer.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("row store: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError indicates a non-success HTTP status from the row store.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("row store: unexpected status %d", e.StatusCode)
}

// Retryable reports whether this status is part of the fixed retryable set.
func (e *StatusError) Retryable() bool {
	switch e.StatusCode {
	case 408, 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

// APIError indicates the row store answered with a well-formed envelope whose
// success flag is false. It is a semantic failure and is never retried.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("row store: %s", e.Message)
}

// MalformedError indicates the response body could not be parsed as the
// expected envelope. Never retried.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("row store: malformed response: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// retryable reports whether a classified error may consume another attempt.
// Transport-class errors and the retryable status subset qualify; semantic and
// malformed-payload errors fail immediately.
func retryable(err error) bool {
	var (
		timeoutErr *TimeoutError
		networkErr *NetworkError
		statusErr  *StatusError
	)
	switch {
	case errors.As(err, &timeoutErr):
		return true
	case errors.As(err, &networkErr):
		return true
	case errors.As(err, &statusErr):
		return statusErr.Retryable()
	default:
		return false
	}
}
