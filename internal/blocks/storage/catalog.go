// Package storage declares the Cloud Storage JSON API v1 blocks.
package storage

import (
	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

var catalog = blocks.NewCatalog(domain.ServiceStorage)

// Blocks returns every Cloud Storage block.
func Blocks() []domain.Block {
	return catalog.Blocks()
}
