package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNoCredentials is returned when no login is available to authenticate with.
	ErrNoCredentials = errors.New("no credentials configured (login is required)")

	// ErrMalformedEnvelope is returned when an expected top-level key is absent
	// from a successful response.
	ErrMalformedEnvelope = errors.New("malformed response envelope")
)

// APIError represents a non-success response.
type APIError struct {
	StatusCode int
	// Messages holds the entries of the response's error collection, if any.
	Messages []string
}

func (err *APIError) Error() string {
	if len(err.Messages) == 0 {
		return fmt.Sprintf("API error (status %d)", err.StatusCode)
	}
	return fmt.Sprintf("API error (status %d): %s", err.StatusCode, strings.Join(err.Messages, "; "))
}

// IsForbidden reports whether err is an APIError with a 403 status.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

// RateLimitError is returned when a bounded RetryPolicy runs out of attempts.
type RateLimitError struct {
	Attempts int
}

func (err *RateLimitError) Error() string {
	return fmt.Sprintf("still rate limited after %d attempts", err.Attempts)
}
