package mcp

import (
	"context"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/services"
)

func testRegistry() *services.BlockRegistry {
	return services.NewBlockRegistry([]domain.Block{
		{
			ID:         "storage.buckets.list",
			Service:    domain.ServiceStorage,
			Name:       "List Buckets",
			HTTPMethod: "GET",
			Path:       "b",
			Fields: []domain.Field{
				{Key: "project", Location: domain.LocationQuery, Type: domain.FieldString, Required: true, DefaultsToProject: true},
				{Key: "maxResults", Location: domain.LocationQuery, Type: domain.FieldInteger},
				{Key: "projection", Location: domain.LocationQuery, Type: domain.FieldString, Enum: []string{"full", "noAcl"}},
			},
			Scopes: []string{"https://www.googleapis.com/auth/devstorage.read_only"},
		},
		{
			ID:         "storage.objects.insert",
			Service:    domain.ServiceStorage,
			Name:       "Upload Object",
			HTTPMethod: "POST",
			Path:       "b/{bucket}/o",
			Upload:     true,
			Fields: []domain.Field{
				{Key: "bucket", Location: domain.LocationPath, Type: domain.FieldString, Required: true},
				{Key: "name", Location: domain.LocationQuery, Type: domain.FieldString, Required: true},
				{Key: "media", Location: domain.LocationMedia, Type: domain.FieldString, Required: true},
			},
			Scopes: []string{"https://www.googleapis.com/auth/devstorage.read_write"},
		},
		{
			ID:         "resourcemanager.projects.get",
			Service:    domain.ServiceResourceManager,
			Name:       "Get Project",
			HTTPMethod: "GET",
			Path:       "v3/{+name}",
			Fields: []domain.Field{
				{Key: "name", Location: domain.LocationPath, Type: domain.FieldString, Required: true},
			},
			Scopes: []string{"https://www.googleapis.com/auth/cloud-platform.read-only"},
		},
	})
}

// mockInvoker implements driving.BlockInvoker.
type mockInvoker struct {
	err        error
	lastBlock  string
	lastInputs map[string]any
}

func (m *mockInvoker) Invoke(_ context.Context, blockID string, inputs map[string]any) (*domain.OutputEvent, error) {
	m.lastBlock = blockID
	m.lastInputs = inputs
	if m.err != nil {
		return nil, m.err
	}
	return &domain.OutputEvent{
		InvocationID: "inv-1",
		BlockID:      blockID,
		StatusCode:   200,
		Data:         map[string]any{"kind": "storage#buckets"},
	}, nil
}

func (m *mockInvoker) Preview(_ context.Context, _ string, _ map[string]any) (*domain.APIRequest, error) {
	return nil, domain.ErrNotImplemented
}

// mockHistory implements driving.HistoryService.
type mockHistory struct {
	invocations []domain.Invocation
}

func (m *mockHistory) List(_ context.Context, _ int) ([]domain.Invocation, error) {
	return m.invocations, nil
}

func (m *mockHistory) Get(_ context.Context, _ string) (*domain.Invocation, error) {
	return nil, domain.ErrNotFound
}

func (m *mockHistory) Prune(_ context.Context, _ int) (int, error) {
	return 0, nil
}
