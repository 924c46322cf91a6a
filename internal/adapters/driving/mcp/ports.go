package mcp

import (
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Registry lists the blocks published as tools.
	Registry driving.BlockRegistry

	// Invoker runs blocks.
	Invoker driving.BlockInvoker

	// History exposes recent invocations as a resource. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Registry == nil {
		return ErrMissingRegistry
	}
	if p.Invoker == nil {
		return ErrMissingInvoker
	}
	return nil
}
