package driven

import (
	"context"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// ProjectInfo is the subset of a Resource Manager project the check reports.
type ProjectInfo struct {
	ProjectID   string
	DisplayName string
	State       string
}

// GCPClients wraps the generated Google API clients used outside the catalog.
type GCPClients interface {
	// GetProject fetches a project through the Resource Manager client.
	GetProject(ctx context.Context, token *domain.AccessToken, projectID string) (*ProjectInfo, error)

	// GetStorageServiceAccount returns the Cloud Storage service agent email.
	GetStorageServiceAccount(ctx context.Context, token *domain.AccessToken, projectID string) (string, error)
}
