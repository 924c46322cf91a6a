package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
)

// Ensure BlockRegistry implements the interface.
var _ driving.BlockRegistry = (*BlockRegistry)(nil)

// BlockRegistry indexes the block catalog by ID.
type BlockRegistry struct {
	blocks []domain.Block
	byID   map[string]int
}

// NewBlockRegistry builds a registry over the given blocks.
// It panics when two blocks share an ID, which is a catalog bug.
func NewBlockRegistry(blocks []domain.Block) *BlockRegistry {
	sorted := make([]domain.Block, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[string]int, len(sorted))
	for i, b := range sorted {
		if _, dup := byID[b.ID]; dup {
			panic(fmt.Sprintf("duplicate block id %q", b.ID))
		}
		byID[b.ID] = i
	}

	return &BlockRegistry{blocks: sorted, byID: byID}
}

// List returns blocks matching the filter, sorted by ID.
func (r *BlockRegistry) List(filter driving.BlockFilter) []domain.Block {
	result := make([]domain.Block, 0, len(r.blocks))
	for _, b := range r.blocks {
		if filter.Service != "" && b.Service != filter.Service {
			continue
		}
		if !b.Matches(filter.Term) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// Get returns a block by ID.
func (r *BlockRegistry) Get(id string) (*domain.Block, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownBlock, id)
	}
	b := r.blocks[i]
	return &b, nil
}

// Services returns every supported service with its block count.
func (r *BlockRegistry) Services() []driving.ServiceSummary {
	counts := make(map[domain.Service]int)
	for _, b := range r.blocks {
		counts[b.Service]++
	}

	services := domain.AllServices()
	summaries := make([]driving.ServiceSummary, 0, len(services))
	for _, svc := range services {
		summaries = append(summaries, driving.ServiceSummary{
			Service:     svc,
			Description: svc.Description(),
			BaseURL:     svc.BaseURL(),
			BlockCount:  counts[svc],
		})
	}
	return summaries
}
