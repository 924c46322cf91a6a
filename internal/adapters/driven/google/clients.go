package google

import (
	"context"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"google.golang.org/api/cloudresourcemanager/v3"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
)

// Ensure Clients implements the interface.
var _ driven.GCPClients = (*Clients)(nil)

// Clients builds generated Google API clients for a resolved token.
type Clients struct {
	base      http.RoundTripper
	userAgent string

	resourceManagerEndpoint string
	storageEndpoint         string
}

// ClientOption configures Clients.
type ClientOption func(*Clients)

// WithEndpoints overrides the API endpoints. Empty values keep the default.
func WithEndpoints(resourceManager, storage string) ClientOption {
	return func(c *Clients) {
		c.resourceManagerEndpoint = resourceManager
		c.storageEndpoint = storage
	}
}

// WithBaseTransport sets the round tripper under the auth and tracing layers.
func WithBaseTransport(base http.RoundTripper) ClientOption {
	return func(c *Clients) {
		c.base = base
	}
}

// NewClients creates a client builder.
func NewClients(userAgent string, opts ...ClientOption) *Clients {
	c := &Clients{
		base:      http.DefaultTransport,
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Clients) options(token *domain.AccessToken, endpoint string) []option.ClientOption {
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: NewTokenSource(token),
			Base:   otelhttp.NewTransport(c.base),
		},
	}
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if c.userAgent != "" {
		opts = append(opts, option.WithUserAgent(c.userAgent))
	}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	return opts
}

// NewResourceManagerService creates a Cloud Resource Manager v3 client.
func (c *Clients) NewResourceManagerService(ctx context.Context, token *domain.AccessToken) (*cloudresourcemanager.Service, error) {
	return cloudresourcemanager.NewService(ctx, c.options(token, c.resourceManagerEndpoint)...)
}

// NewStorageService creates a Cloud Storage v1 client.
func (c *Clients) NewStorageService(ctx context.Context, token *domain.AccessToken) (*storage.Service, error) {
	return storage.NewService(ctx, c.options(token, c.storageEndpoint)...)
}

// GetProject fetches a project by ID.
func (c *Clients) GetProject(ctx context.Context, token *domain.AccessToken, projectID string) (*driven.ProjectInfo, error) {
	svc, err := c.NewResourceManagerService(ctx, token)
	if err != nil {
		return nil, err
	}

	name := "projects/" + projectID
	p, err := svc.Projects.Get(name).Context(ctx).Do()
	if err != nil {
		return nil, ToAPIError(http.MethodGet, name, err)
	}
	return &driven.ProjectInfo{
		ProjectID:   p.ProjectId,
		DisplayName: p.DisplayName,
		State:       p.State,
	}, nil
}

// GetStorageServiceAccount returns the project's Cloud Storage service agent.
func (c *Clients) GetStorageServiceAccount(ctx context.Context, token *domain.AccessToken, projectID string) (string, error) {
	svc, err := c.NewStorageService(ctx, token)
	if err != nil {
		return "", err
	}

	sa, err := svc.Projects.ServiceAccount.Get(projectID).Context(ctx).Do()
	if err != nil {
		return "", ToAPIError(http.MethodGet, "projects/"+projectID+"/serviceAccount", err)
	}
	return sa.EmailAddress, nil
}
