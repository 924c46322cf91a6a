package google

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

// Ensure Transport implements the interface.
var _ driven.HTTPTransport = (*Transport)(nil)

// Transport sends built block requests to Google APIs.
type Transport struct {
	base     http.RoundTripper
	limiters *Limiters

	mu        sync.RWMutex
	client    *http.Client
	userAgent string
}

// NewTransport creates a transport from settings. base is the underlying
// round tripper; nil uses http.DefaultTransport.
func NewTransport(settings domain.AppSettings, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	t := &Transport{
		base:     base,
		limiters: NewLimiters(settings.RateLimits),
	}
	t.Apply(settings)
	return t
}

// Apply updates the timeout, user agent and rate limits, e.g. after a
// config reload. Backoff windows already open are kept.
func (t *Transport) Apply(settings domain.AppSettings) {
	client := &http.Client{
		Timeout: settings.HTTP.Timeout,
		Transport: otelhttp.NewTransport(t.base,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Host
			}),
		),
	}

	t.mu.Lock()
	t.client = client
	t.userAgent = settings.HTTP.UserAgent
	t.mu.Unlock()

	t.limiters.Update(settings.RateLimits)
}

// Limiter returns the rate limiter for a service.
func (t *Transport) Limiter(service domain.Service) *RateLimiter {
	return t.limiters.For(service)
}

// Do sends the request with the token attached. Non-2xx responses are
// returned as *domain.APIError.
func (t *Transport) Do(ctx context.Context, req *domain.APIRequest, token *domain.AccessToken) (*domain.APIResponse, error) {
	limiter := t.limiters.For(req.Service)
	if err := limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s limiter: %v", domain.ErrRateLimited, req.Service, err)
	}

	t.mu.RLock()
	client, userAgent := t.client, t.userAgent
	t.mu.RUnlock()

	var body io.Reader = http.NoBody
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrInvalidInput, err)
	}
	for k, v := range req.Header {
		httpReq.Header[k] = v
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if userAgent != "" {
		httpReq.Header.Set("User-Agent", userAgent)
	}
	if token != nil {
		httpReq.Header.Set("Authorization", token.AuthorizationHeader())
	}

	start := time.Now()
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	logger.WithContext(ctx).WithFields(logger.Fields{
		"gcpblocks.service":  req.Service,
		"gcpblocks.method":   req.Method,
		"gcpblocks.url":      req.URL,
		"gcpblocks.status":   resp.StatusCode,
		"gcpblocks.duration": time.Since(start).String(),
	}).Debug("google api call")

	if resp.StatusCode == http.StatusTooManyRequests {
		wait := ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		limiter.RecordRateLimitError(wait)
		logger.Warn("%s rate limited by Google, backing off", req.Service)
	}

	resp.Body = io.NopCloser(bytes.NewReader(data))
	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, ToAPIError(req.Method, req.URL, err)
	}

	return &domain.APIResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
