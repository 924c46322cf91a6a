package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// CredentialSource identifies where an access token comes from.
type CredentialSource string

// Available credential sources, in order of precedence.
const (
	// CredentialAccessToken is a caller-supplied short-lived bearer token.
	CredentialAccessToken CredentialSource = "access_token"

	// CredentialServiceAccountKey mints tokens from a service-account JSON key.
	CredentialServiceAccountKey CredentialSource = "service_account_key"

	// CredentialDefault uses application default credentials. Opt-in only.
	CredentialDefault CredentialSource = "default_credentials"
)

// String returns the string representation.
func (c CredentialSource) String() string {
	return string(c)
}

// Description returns a human-readable description of the source.
func (c CredentialSource) Description() string {
	switch c {
	case CredentialAccessToken:
		return "Access token"
	case CredentialServiceAccountKey:
		return "Service account key"
	case CredentialDefault:
		return "Application default credentials"
	default:
		return unknownDescription
	}
}

// ProjectSettings holds the project blocks operate on by default.
type ProjectSettings struct {
	// ID is the Google Cloud project ID.
	ID string
}

// AuthSettings holds the process-wide credential configuration.
type AuthSettings struct {
	// AccessToken is a short-lived bearer token, e.g. from workload identity federation.
	AccessToken string
	// ServiceAccountKey is the JSON text of a service-account key.
	ServiceAccountKey string
	// ServiceAccountKeyFile points at a key file; read into ServiceAccountKey on load.
	ServiceAccountKeyFile string
	// UseDefaultCredentials enables application default credentials as a last resort.
	UseDefaultCredentials bool
}

// Source returns the credential source that will be used, or an empty
// source when nothing is configured.
func (a AuthSettings) Source() CredentialSource {
	switch {
	case a.AccessToken != "":
		return CredentialAccessToken
	case a.ServiceAccountKey != "":
		return CredentialServiceAccountKey
	case a.UseDefaultCredentials:
		return CredentialDefault
	default:
		return ""
	}
}

// IsConfigured returns true if any credential source is available.
func (a AuthSettings) IsConfigured() bool {
	return a.Source() != ""
}

// HTTPSettings configures the outgoing HTTP client.
type HTTPSettings struct {
	// Timeout bounds a single API call, including reading the body.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
}

// RateLimitSettings configures the client-side token bucket for one service.
type RateLimitSettings struct {
	// RequestsPerSecond is the sustained rate.
	RequestsPerSecond float64
	// Burst is the maximum burst size.
	Burst int
}

// HistorySettings controls invocation history persistence.
type HistorySettings struct {
	// Enabled turns on recording of invocations.
	Enabled bool
	// RetentionDays prunes records older than this many days. Zero keeps everything.
	RetentionDays int
}

// AppSettings represents all user-configurable settings.
type AppSettings struct {
	Project    ProjectSettings
	Auth       AuthSettings
	HTTP       HTTPSettings
	RateLimits map[Service]RateLimitSettings
	History    HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		HTTP: HTTPSettings{
			Timeout:   60 * time.Second,
			UserAgent: "gcpblocks",
		},
		RateLimits: DefaultRateLimits(),
		History: HistorySettings{
			Enabled:       true,
			RetentionDays: 30,
		},
	}
}

// DefaultRateLimits are well below the published per-project quotas.
func DefaultRateLimits() map[Service]RateLimitSettings {
	return map[Service]RateLimitSettings{
		ServiceResourceManager: {RequestsPerSecond: 5, Burst: 10},
		ServiceStorage:         {RequestsPerSecond: 20, Burst: 40},
	}
}

// Validate checks that the settings can be used to invoke a block.
// One of serviceAccountKey or accessToken must be present unless
// default credentials were explicitly enabled.
func (s *AppSettings) Validate() error {
	if !s.Auth.IsConfigured() {
		return fmt.Errorf("%w: one of serviceAccountKey or accessToken must be present", ErrMissingCredentials)
	}
	if s.HTTP.Timeout < 0 {
		return fmt.Errorf("%w: http timeout must not be negative", ErrInvalidInput)
	}
	for svc, rl := range s.RateLimits {
		if rl.RequestsPerSecond < 0 || rl.Burst < 0 {
			return fmt.Errorf("%w: rate limit for %s must not be negative", ErrInvalidInput, svc)
		}
	}
	return nil
}
