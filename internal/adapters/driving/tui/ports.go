// Package tui provides an interactive terminal browser for the block catalog.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Registry lists and describes blocks.
	Registry driving.BlockRegistry

	// Invoker runs blocks from the block form.
	Invoker driving.BlockInvoker

	// History lists recent invocations. Optional.
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
