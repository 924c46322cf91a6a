package driven

import (
	"context"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// HTTPTransport issues built API requests.
type HTTPTransport interface {
	// Do sends the request with the given token attached.
	// Non-2xx responses are returned as *domain.APIError.
	Do(ctx context.Context, req *domain.APIRequest, token *domain.AccessToken) (*domain.APIResponse, error)
}
