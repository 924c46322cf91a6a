package httpapi

import (
	"context"
	"time"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func testBlocks() []domain.Block {
	return []domain.Block{
		{
			ID:         "storage.buckets.get",
			Service:    domain.ServiceStorage,
			Name:       "Get Bucket",
			HTTPMethod: "GET",
			Path:       "b/{bucket}",
			Fields: []domain.Field{
				{Key: "bucket", Location: domain.LocationPath, Type: domain.FieldString, Required: true},
			},
			Scopes: []string{"https://www.googleapis.com/auth/devstorage.read_only"},
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
	}
}

// mockInvoker implements driving.BlockInvoker.
type mockInvoker struct {
	InvokeFunc  func(ctx context.Context, blockID string, inputs map[string]any) (*domain.OutputEvent, error)
	PreviewFunc func(ctx context.Context, blockID string, inputs map[string]any) (*domain.APIRequest, error)

	lastInputs map[string]any
}

func (m *mockInvoker) Invoke(ctx context.Context, blockID string, inputs map[string]any) (*domain.OutputEvent, error) {
	m.lastInputs = inputs
	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, blockID, inputs)
	}
	return &domain.OutputEvent{
		InvocationID: "inv-1",
		BlockID:      blockID,
		StatusCode:   200,
		Data:         map[string]any{"ok": true},
		CompletedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (m *mockInvoker) Preview(ctx context.Context, blockID string, inputs map[string]any) (*domain.APIRequest, error) {
	m.lastInputs = inputs
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, blockID, inputs)
	}
	return &domain.APIRequest{Method: "GET", URL: "https://example.test/" + blockID}, nil
}

// mockHistory implements driving.HistoryService.
type mockHistory struct {
	invocations []domain.Invocation
	lastLimit   int
}

func (m *mockHistory) List(_ context.Context, limit int) ([]domain.Invocation, error) {
	m.lastLimit = limit
	return m.invocations, nil
}

func (m *mockHistory) Get(_ context.Context, id string) (*domain.Invocation, error) {
	for i := range m.invocations {
		if m.invocations[i].ID == id {
			inv := m.invocations[i]
			return &inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistory) Prune(_ context.Context, _ int) (int, error) {
	return 0, nil
}
