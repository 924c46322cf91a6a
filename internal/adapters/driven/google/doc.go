// Package google provides the driven adapters that talk to Google Cloud APIs.
//
// This package contains:
//   - Transport: the HTTP transport blocks are sent through, with per-service
//     rate limiting and OpenTelemetry instrumentation
//   - Clients: generated Resource Manager and Storage clients used by the
//     credential check
//   - TokenSource adapter to bridge domain.AccessToken to oauth2.TokenSource
//   - Conversion of googleapi errors into domain.APIError
//
// # Usage
//
//	transport := google.NewTransport(settings, nil)
//	resp, err := transport.Do(ctx, req, token)
//
// Non-2xx responses come back as *domain.APIError. A 429 response opens a
// backoff window on that service's limiter, but the call is not retried.
package google
