// Package catalog assembles the blocks of every supported service.
package catalog

import (
	"github.com/custodia-labs/gcpblocks/internal/blocks/resourcemanager"
	"github.com/custodia-labs/gcpblocks/internal/blocks/storage"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// All returns every block in the catalog, unsorted.
func All() []domain.Block {
	rm := resourcemanager.Blocks()
	st := storage.Blocks()
	out := make([]domain.Block, 0, len(rm)+len(st))
	out = append(out, rm...)
	return append(out, st...)
}
