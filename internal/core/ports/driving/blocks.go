package driving

import (
	"context"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// BlockFilter narrows a catalog listing.
type BlockFilter struct {
	// Service restricts results to one API. Empty means all.
	Service domain.Service
	// Term is a case-insensitive substring of the ID, name or description.
	Term string
}

// ServiceSummary describes one service in the catalog.
type ServiceSummary struct {
	Service     domain.Service `json:"service"`
	Description string         `json:"description"`
	BaseURL     string         `json:"base_url"`
	BlockCount  int            `json:"block_count"`
}

// BlockRegistry exposes the block catalog.
type BlockRegistry interface {
	// List returns blocks matching the filter, sorted by ID.
	List(filter BlockFilter) []domain.Block

	// Get returns a block by ID, or domain.ErrUnknownBlock.
	Get(id string) (*domain.Block, error)

	// Services returns every service with its block count.
	Services() []ServiceSummary
}

// BlockInvoker runs blocks.
type BlockInvoker interface {
	// Invoke runs the block with the given inputs and returns its output event.
	// A non-2xx upstream status is returned as *domain.APIError.
	Invoke(ctx context.Context, blockID string, inputs map[string]any) (*domain.OutputEvent, error)

	// Preview builds the request the block would send without sending it.
	Preview(ctx context.Context, blockID string, inputs map[string]any) (*domain.APIRequest, error)
}
