// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCatalog is the filterable block list.
	ViewCatalog ViewType = iota
	// ViewBlock is the input form of one block.
	ViewBlock
	// ViewResult shows the outcome of an invocation.
	ViewResult
	// ViewHistory lists recent invocations.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewBlock:
		return "block"
	case ViewResult:
		return "result"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// BlockSelected is sent when a block is chosen in the catalog.
type BlockSelected struct {
	Block domain.Block
}

// InvokeCompleted carries the outcome of a block invocation.
type InvokeCompleted struct {
	BlockID string
	Event   *domain.OutputEvent
	Err     error
}

// PreviewCompleted carries the request a block would send.
type PreviewCompleted struct {
	BlockID string
	Request *domain.APIRequest
	Err     error
}

// HistoryLoaded carries recent invocations.
type HistoryLoaded struct {
	Invocations []domain.Invocation
	Err         error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
