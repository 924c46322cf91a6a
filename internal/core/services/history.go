package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads and prunes recorded invocations.
type HistoryService struct {
	store    driven.HistoryStore
	settings driving.SettingsService
	now      func() time.Time
}

// NewHistoryService creates a history service. store may be nil when
// history is disabled.
func NewHistoryService(store driven.HistoryStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{store: store, settings: settings, now: time.Now}
}

// List returns the most recent invocations, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Invocation, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	return s.store.List(ctx, limit)
}

// Get returns one invocation by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Invocation, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if id == "" {
		return nil, fmt.Errorf("%w: invocation id is empty", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// Prune removes invocations older than olderThanDays. Zero uses the
// configured retention; a configured retention of zero keeps everything.
func (s *HistoryService) Prune(ctx context.Context, olderThanDays int) (int, error) {
	if s.store == nil {
		return 0, domain.ErrHistoryUnavailable
	}
	if olderThanDays < 0 {
		return 0, fmt.Errorf("%w: days must not be negative", domain.ErrInvalidInput)
	}

	days := olderThanDays
	if days == 0 {
		settings, err := s.settings.Get()
		if err != nil {
			return 0, fmt.Errorf("load settings: %w", err)
		}
		days = settings.History.RetentionDays
	}
	if days == 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	return s.store.Prune(ctx, cutoff)
}
