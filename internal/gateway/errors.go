package gateway

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnauthorized matches any backend 401 response.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNetwork is returned when a request was sent but no response
	// arrived. The underlying cause (DNS, refused, timeout) is not
	// preserved; callers get one fixed message.
	ErrNetwork = errors.New("network error: check your connection")
)

// APIError is returned when the backend answered with a non-2xx status.
type APIError struct {
	// Status is the HTTP status code the backend returned.
	Status int
	// Detail is the backend-provided error message, when present.
	Detail string
}

// Error returns the backend detail when present, else a generic message.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Is reports whether this error matches the target error.
// It supports errors.Is(err, ErrUnauthorized) for 401 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == 401
}
