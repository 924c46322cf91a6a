package google

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// ToAPIError converts a *googleapi.Error into a *domain.APIError carrying the
// Google error message and first reason. Other errors are returned unchanged.
func ToAPIError(method, url string, err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	apiErr := domain.NewAPIError(method, url, gerr.Code, []byte(gerr.Body))
	apiErr.Message = gerr.Message
	if len(gerr.Errors) > 0 {
		apiErr.Reason = gerr.Errors[0].Reason
		if apiErr.Message == "" {
			apiErr.Message = gerr.Errors[0].Message
		}
	}
	return apiErr
}

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsForbidden returns true if the error indicates insufficient permissions.
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

func statusOf(err error) int {
	if apiErr, ok := domain.AsAPIError(err); ok {
		return apiErr.StatusCode
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}
