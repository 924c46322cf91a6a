package google

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// defaultBackoff applies when a 429 response carries no usable Retry-After.
const defaultBackoff = 30 * time.Second

// RateLimiter provides rate limiting for one Google API service.
// It uses a token bucket with an optional backoff window after 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	service domain.Service
}

// NewRateLimiter creates a limiter for the service. A non-positive rate
// disables throttling.
func NewRateLimiter(service domain.Service, cfg domain.RateLimitSettings) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(limitOf(cfg), burstOf(cfg)),
		service: service,
	}
}

func limitOf(cfg domain.RateLimitSettings) rate.Limit {
	if cfg.RequestsPerSecond <= 0 {
		return rate.Inf
	}
	return rate.Limit(cfg.RequestsPerSecond)
}

func burstOf(cfg domain.RateLimitSettings) int {
	if cfg.Burst < 1 {
		return 1
	}
	return cfg.Burst
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff window set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	// First, honour backoff from a previous 429
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if wait := time.Until(retryAt); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	// Then wait for the token bucket
	return r.limiter.Wait(ctx)
}

// RecordRateLimitError opens a backoff window. Call this when receiving a
// 429 response. A non-positive retryAfter uses the default backoff.
func (r *RateLimiter) RecordRateLimitError(retryAfter time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfter <= 0 {
		retryAfter = defaultBackoff
	}
	r.retryAt = time.Now().Add(retryAfter)
}

// Allow checks if a request can be made immediately without blocking.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}
	return r.limiter.Allow()
}

// Update changes the rate and burst in place.
func (r *RateLimiter) Update(cfg domain.RateLimitSettings) {
	r.limiter.SetLimit(limitOf(cfg))
	r.limiter.SetBurst(burstOf(cfg))
}

// Limiters holds one RateLimiter per service.
type Limiters struct {
	mu        sync.Mutex
	byService map[domain.Service]*RateLimiter
}

// NewLimiters creates limiters from settings.
func NewLimiters(cfg map[domain.Service]domain.RateLimitSettings) *Limiters {
	l := &Limiters{byService: make(map[domain.Service]*RateLimiter)}
	l.Update(cfg)
	return l
}

// For returns the limiter for a service, creating one with the default
// limits when the service was not configured.
func (l *Limiters) For(service domain.Service) *RateLimiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if r, ok := l.byService[service]; ok {
		return r
	}
	r := NewRateLimiter(service, domain.DefaultRateLimits()[service])
	l.byService[service] = r
	return r
}

// Update applies new settings, keeping existing backoff windows.
func (l *Limiters) Update(cfg map[domain.Service]domain.RateLimitSettings) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for svc, c := range cfg {
		if r, ok := l.byService[svc]; ok {
			r.Update(c)
			continue
		}
		l.byService[svc] = NewRateLimiter(svc, c)
	}
}

// ParseRetryAfter reads a Retry-After header given either as seconds or as
// an HTTP date. It returns zero when the header is absent or unusable.
func ParseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
