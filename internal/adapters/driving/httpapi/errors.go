package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

// ErrorBody is the JSON envelope of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed call.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	// Upstream is the Google API error body, when there is one.
	Upstream json.RawMessage `json:"upstream,omitempty"`
}

// StatusFor maps an error to the HTTP status returned to the caller.
func StatusFor(err error) int {
	if apiErr, ok := domain.AsAPIError(err); ok {
		return apiErr.StatusCode
	}

	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrUnknownBlock), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMissingRequiredField):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrTokenAcquisition):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrHistoryUnavailable), errors.Is(err, domain.ErrNotImplemented):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	status := StatusFor(err)

	var upstream json.RawMessage
	if apiErr, ok := domain.AsAPIError(err); ok && json.Valid(apiErr.Body) {
		upstream = apiErr.Body
	}
	if status >= http.StatusInternalServerError {
		logger.WithFields(logger.Fields{"gcpblocks.http.status": status}).WithError(err).Warn("request failed")
	}
	writeError(w, status, err.Error(), upstream)
}

func writeError(w http.ResponseWriter, status int, message string, upstream json.RawMessage) {
	writeJSON(w, status, ErrorBody{Error: ErrorDetail{
		Code:     status,
		Status:   http.StatusText(status),
		Message:  message,
		Upstream: upstream,
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Warn("encoding response: %v", err)
	}
}
