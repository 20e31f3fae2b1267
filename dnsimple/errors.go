package dnsimple

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid dnsimple configuration")
	// ErrMissingPath indicates a request was built without a path
	ErrMissingPath = errors.New("request path is required")
	// ErrMissingData indicates the response envelope had no data key
	ErrMissingData = errors.New("response has no data")
	// ErrMissingPagination indicates a paginated decode of a response without pagination
	ErrMissingPagination = errors.New("response has no pagination")
)

// APIError is a failed API call the client has no more specific kind for.
// Every other API error kind unwraps to an *APIError.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the server-supplied message verbatim
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// NotFoundError is returned for 404 responses
type NotFoundError struct {
	APIError
}

func (e *NotFoundError) Unwrap() error { return &e.APIError }

// AuthenticationError is returned for 401 responses
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Unwrap() error { return &e.APIError }

// ValidationError is returned for 400 responses. Errors maps each rejected
// field to the server's messages for it.
type ValidationError struct {
	APIError
	Errors map[string][]string
}

func (e *ValidationError) Unwrap() error { return &e.APIError }

// FieldErrors returns the messages reported for field, or nil
func (e *ValidationError) FieldErrors(field string) []string {
	return e.Errors[field]
}

// ServiceUnavailableError is returned for 501, 502, 503 and 504 responses
type ServiceUnavailableError struct {
	APIError
}

func (e *ServiceUnavailableError) Unwrap() error { return &e.APIError }

// DecodeError indicates a successful response whose payload could not be decoded
type DecodeError struct {
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RateLimitHeaderError indicates a missing or non-numeric rate limit header
type RateLimitHeaderError struct {
	Header string
	Value  string
	Err    error
}

func (e *RateLimitHeaderError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("missing rate limit header %s", e.Header)
	}
	return fmt.Sprintf("invalid rate limit header %s=%q: %v", e.Header, e.Value, e.Err)
}

func (e *RateLimitHeaderError) Unwrap() error {
	return e.Err
}

// errorEnvelope is the body the API sends with a failed call
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// newResponseError builds the typed error for a failed call. A body that is
// not a valid error envelope still yields the kind for the status code.
func newResponseError(statusCode int, body []byte) error {
	var envelope errorEnvelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &envelope); err != nil {
			envelope = errorEnvelope{}
		}
	}

	base := APIError{StatusCode: statusCode, Message: envelope.Message}
	switch statusCode {
	case http.StatusBadRequest:
		return &ValidationError{APIError: base, Errors: envelope.Errors}
	case http.StatusUnauthorized:
		return &AuthenticationError{APIError: base}
	case http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case http.StatusNotImplemented, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return &ServiceUnavailableError{APIError: base}
	default:
		return &base
	}
}

// IsNotFound checks if err is or wraps a *NotFoundError
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsAuthentication checks if err is or wraps an *AuthenticationError
func IsAuthentication(err error) bool {
	var e *AuthenticationError
	return errors.As(err, &e)
}

// IsValidation checks if err is or wraps a *ValidationError
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsServiceUnavailable checks if err is or wraps a *ServiceUnavailableError
func IsServiceUnavailable(err error) bool {
	var e *ServiceUnavailableError
	return errors.As(err, &e)
}

// StatusCode returns the HTTP status of an API error, or 0 when err is not one
func StatusCode(err error) int {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
