package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases.
// Use errors.Is() to check against these.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUpstreamError = errors.New("upstream error")
	ErrRateLimited   = errors.New("rate limited")
	ErrStoreNotFound = errors.New("destination store not found")
)

// APIError represents a structured error from one of the two remote
// APIs. Implements error interface and supports unwrapping.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"` // upstream HTTP status
	Body       string `json:"-"` // raw upstream response body, for diagnostics
	Err        error  `json:"-"` // wrapped error, not serialized
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewFetchError creates an error for a non-200 response from an
// upstream API. Carries the status code and response body so the run
// summary can print exactly what the remote said.
func NewFetchError(service string, statusCode int, body []byte) *APIError {
	return &APIError{
		Code:       "FETCH_FAILED",
		Message:    fmt.Sprintf("%s returned status %d", service, statusCode),
		StatusCode: statusCode,
		Body:       string(body),
		Err:        ErrUpstreamError,
	}
}

// NewUnauthorizedError creates an error for auth failures.
func NewUnauthorizedError(service string) *APIError {
	return &APIError{
		Code:       "UNAUTHORIZED",
		Message:    fmt.Sprintf("%s authentication failed", service),
		StatusCode: 401,
		Err:        ErrUnauthorized,
	}
}

// NewRateLimitError creates an error for 429 responses.
func NewRateLimitError(service string) *APIError {
	return &APIError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("%s rate limit exceeded, please retry later", service),
		StatusCode: 429,
		Err:        ErrRateLimited,
	}
}

// NewUpstreamError creates an error for transport-level failures.
func NewUpstreamError(service string, err error) *APIError {
	return &APIError{
		Code:    "UPSTREAM_ERROR",
		Message: fmt.Sprintf("%s request failed", service),
		Err:     fmt.Errorf("%w: %v", ErrUpstreamError, err),
	}
}

// NewStoreNotFoundError creates the error returned when no destination
// store can be resolved. Fatal for the whole run: nothing can be
// submitted without a store ID.
func NewStoreNotFoundError(name string) *APIError {
	return &APIError{
		Code:    "STORE_NOT_FOUND",
		Message: fmt.Sprintf("no store named %q in ShipStation account", name),
		Err:     ErrStoreNotFound,
	}
}
