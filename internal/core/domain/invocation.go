package domain

import (
	"net/http"
	"time"
)

// APIRequest is a fully built HTTP call, ready for the transport.
type APIRequest struct {
	// Service routes the call to the right rate limiter.
	Service Service
	// Method is the HTTP verb.
	Method string
	// URL is the absolute request URL including the query string.
	URL string
	// Header holds extra request headers.
	Header http.Header
	// Body is the encoded request body, nil when the block sends none.
	Body []byte
	// ContentType is the body's media type.
	ContentType string
}

// APIResponse is the transport's view of an HTTP response.
type APIResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// ContentType returns the response media type header.
func (r *APIResponse) ContentType() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get("Content-Type")
}

// OutputEvent is what a block publishes after a successful call.
type OutputEvent struct {
	// InvocationID uniquely identifies this run.
	InvocationID string `json:"invocation_id"`
	// BlockID is the block that produced the event.
	BlockID string `json:"block_id"`
	// StatusCode is the upstream HTTP status.
	StatusCode int `json:"status_code"`
	// Data is the decoded JSON body, nil for an empty body.
	Data any `json:"data"`
	// Raw holds non-JSON payloads such as alt=media downloads.
	Raw []byte `json:"raw,omitempty"`
	// ContentType is the upstream response media type.
	ContentType string `json:"content_type,omitempty"`
	// Duration is the wall time of the call.
	Duration time.Duration `json:"duration"`
	// CompletedAt is when the response was received.
	CompletedAt time.Time `json:"completed_at"`
}

// InvocationStatus is the outcome of a recorded invocation.
type InvocationStatus string

const (
	InvocationSucceeded InvocationStatus = "succeeded"
	InvocationFailed    InvocationStatus = "failed"
)

// Invocation is the history record of one block run.
type Invocation struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`
	// BlockID is the block that ran.
	BlockID string `json:"block_id"`
	// Inputs are the caller inputs with secret-looking values masked.
	Inputs map[string]any `json:"inputs"`
	// Status is the outcome.
	Status InvocationStatus `json:"status"`
	// StatusCode is the upstream HTTP status, zero if no call was made.
	StatusCode int `json:"status_code,omitempty"`
	// Error is the error text for failed runs.
	Error string `json:"error,omitempty"`
	// CredentialSource records which credential was used.
	CredentialSource CredentialSource `json:"credential_source,omitempty"`
	// StartedAt is when the invocation began.
	StartedAt time.Time `json:"started_at"`
	// Duration is the wall time of the invocation.
	Duration time.Duration `json:"duration"`
}
