package google

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func TestRateLimiter_BurstThenThrottle(t *testing.T) {
	r := NewRateLimiter(domain.ServiceStorage, domain.RateLimitSettings{RequestsPerSecond: 1, Burst: 2})

	assert.True(t, r.Allow())
	assert.True(t, r.Allow())
	assert.False(t, r.Allow())
}

func TestRateLimiter_ZeroRateIsUnlimited(t *testing.T) {
	r := NewRateLimiter(domain.ServiceStorage, domain.RateLimitSettings{})

	for i := 0; i < 100; i++ {
		require.True(t, r.Allow())
	}
}

func TestRateLimiter_BackoffWindow(t *testing.T) {
	r := NewRateLimiter(domain.ServiceStorage, domain.RateLimitSettings{RequestsPerSecond: 100, Burst: 10})

	r.RecordRateLimitError(time.Hour)
	assert.False(t, r.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiter_ShortBackoffElapses(t *testing.T) {
	r := NewRateLimiter(domain.ServiceStorage, domain.RateLimitSettings{RequestsPerSecond: 100, Burst: 10})
	r.RecordRateLimitError(10 * time.Millisecond)

	start := time.Now()
	require.NoError(t, r.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestLimiters_ForAndUpdate(t *testing.T) {
	l := NewLimiters(map[domain.Service]domain.RateLimitSettings{
		domain.ServiceStorage: {RequestsPerSecond: 1, Burst: 1},
	})

	storage := l.For(domain.ServiceStorage)
	assert.Same(t, storage, l.For(domain.ServiceStorage))
	assert.True(t, storage.Allow())
	assert.False(t, storage.Allow())

	l.Update(map[domain.Service]domain.RateLimitSettings{
		domain.ServiceStorage: {RequestsPerSecond: 0, Burst: 1},
	})
	assert.Same(t, storage, l.For(domain.ServiceStorage))
	assert.True(t, storage.Allow())

	// Unconfigured services fall back to the defaults.
	assert.NotNil(t, l.For(domain.ServiceResourceManager))
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 0},
		{"7", 7 * time.Second},
		{"0", 0},
		{"-3", 0},
		{now.Add(90 * time.Second).Format(http.TimeFormat), 90 * time.Second},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
		{"soon", 0},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRetryAfter(tt.value, now))
		})
	}
}
