package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// HistoryStore persists invocation records.
type HistoryStore interface {
	// Record stores an invocation.
	Record(ctx context.Context, inv domain.Invocation) error

	// Get retrieves an invocation by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Invocation, error)

	// List returns the most recent invocations, newest first.
	// A limit of zero or less returns all records.
	List(ctx context.Context, limit int) ([]domain.Invocation, error)

	// Prune deletes invocations started before the cutoff and returns
	// the number removed.
	Prune(ctx context.Context, before time.Time) (int, error)
}
