package api

import (
	"errors"
	"fmt"
)

// Common relay API errors that can be checked with errors.Is.
var (
	// ErrMissingToken indicates no bearer token was provided.
	ErrMissingToken = errors.New("auth token is required")
	// ErrUnauthorized indicates the bearer token is missing or malformed.
	ErrUnauthorized = errors.New("invalid or expired auth token")
	// ErrUserNotFound indicates the requested user is not registered.
	ErrUserNotFound = errors.New("user not found")
	// ErrBlobRejected indicates the relay refused the envelope text.
	ErrBlobRejected = errors.New("encrypted blob rejected")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents an HTTP error response from the relay.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("relay error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("relay error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrBlobRejected
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrUserNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure after all retries.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
