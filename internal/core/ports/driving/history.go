package driving

import (
	"context"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// HistoryService reads and maintains the invocation history.
type HistoryService interface {
	// List returns the most recent invocations, newest first.
	List(ctx context.Context, limit int) ([]domain.Invocation, error)

	// Get returns one invocation by ID.
	Get(ctx context.Context, id string) (*domain.Invocation, error)

	// Prune removes invocations older than the given number of days.
	// Zero uses the configured retention.
	Prune(ctx context.Context, olderThanDays int) (int, error)
}
