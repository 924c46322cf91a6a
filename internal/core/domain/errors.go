package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownBlock indicates the block ID is not in the catalog.
	ErrUnknownBlock = errors.New("unknown block")

	// ErrMissingRequiredField indicates a required block input was not supplied.
	ErrMissingRequiredField = errors.New("missing required field")

	// Authentication Errors.

	// ErrMissingCredentials indicates neither an access token nor a
	// service-account key is configured.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrTokenAcquisition indicates a token could not be minted from the
	// configured credential.
	ErrTokenAcquisition = errors.New("token acquisition failed")

	// Transport Errors.

	// ErrRateLimited indicates the client-side limiter or the API refused the call.
	ErrRateLimited = errors.New("rate limited")

	// ErrHistoryUnavailable indicates history persistence is disabled.
	ErrHistoryUnavailable = errors.New("history unavailable")
)

// APIError is returned when a Google API answers with a non-2xx status.
type APIError struct {
	// StatusCode is the HTTP status code, e.g. 404.
	StatusCode int
	// StatusText is the canonical text for the status, e.g. "Not Found".
	StatusText string
	// Method and URL identify the failed call.
	Method string
	URL    string
	// Message is the error message reported by the API, if any.
	Message string
	// Reason is the first error reason reported by the API, if any.
	Reason string
	// Body is the raw response body.
	Body []byte
}

// NewAPIError builds an APIError filling StatusText from the status code.
func NewAPIError(method, url string, statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		StatusText: http.StatusText(statusCode),
		Method:     method,
		URL:        url,
		Body:       body,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("request failed with status %d %s", e.StatusCode, e.StatusText)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is lets errors.Is match APIError against the closest domain sentinel.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}

// AsAPIError extracts an APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
