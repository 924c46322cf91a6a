package driving

import "github.com/custodia-labs/gcpblocks/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings with environment
	// overrides applied.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its dotted key, e.g. "project.id".
	Set(key, value string) error

	// SetAccessToken stores a caller-supplied access token.
	SetAccessToken(token string) error

	// SetServiceAccountKey stores service-account key JSON.
	SetServiceAccountKey(keyJSON string) error

	// Validate checks that current settings can be used to invoke a block.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Keys returns the settable keys.
	Keys() []string
}
