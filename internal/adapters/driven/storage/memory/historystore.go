package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu          sync.RWMutex
	invocations map[string]domain.Invocation
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		invocations: make(map[string]domain.Invocation),
	}
}

// Record stores an invocation, replacing any record with the same ID.
func (s *HistoryStore) Record(_ context.Context, inv domain.Invocation) error {
	if inv.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invocations[inv.ID] = inv
	return nil
}

// Get retrieves an invocation by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.Invocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invocations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &inv, nil
}

// List returns invocations newest first, at most limit when limit > 0.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.Invocation, error) {
	s.mu.RLock()
	result := make([]domain.Invocation, 0, len(s.invocations))
	for _, inv := range s.invocations {
		result = append(result, inv)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Prune deletes invocations started before the cutoff.
func (s *HistoryStore) Prune(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, inv := range s.invocations {
		if inv.StartedAt.Before(before) {
			delete(s.invocations, id)
			removed++
		}
	}
	return removed, nil
}
