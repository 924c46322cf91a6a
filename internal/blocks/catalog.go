package blocks

import (
	"strings"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// Catalog collects the block definitions of one service.
type Catalog struct {
	service domain.Service
	blocks  []domain.Block
}

// NewCatalog creates an empty catalog for the service.
func NewCatalog(service domain.Service) *Catalog {
	return &Catalog{service: service}
}

// Register adds a block definition. It is meant to be called from
// package-level var declarations, one per block.
func (c *Catalog) Register(b domain.Block) domain.Block {
	if b.Service == "" {
		b.Service = c.service
	}
	if b.Resource == "" {
		b.Resource = resourceFromID(b.ID)
	}
	c.blocks = append(c.blocks, b)
	return b
}

// Blocks returns a copy of the registered definitions.
func (c *Catalog) Blocks() []domain.Block {
	out := make([]domain.Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// resourceFromID strips the service prefix and method suffix,
// e.g. "storage.objectAccessControls.get" gives "objectAccessControls".
func resourceFromID(id string) string {
	parts := strings.Split(id, ".")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], ".")
}
