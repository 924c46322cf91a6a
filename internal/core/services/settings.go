package services

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyProjectID         = "project.id"
	keyAccessToken       = "auth.access_token"
	keyServiceAccountKey = "auth.service_account_key"
	keyKeyFile           = "auth.service_account_key_file"
	keyUseADC            = "auth.use_default_credentials"
	keyHTTPTimeout       = "http.timeout"
	keyHTTPUserAgent     = "http.user_agent"
	keyHistoryEnabled    = "history.enabled"
	keyHistoryRetention  = "history.retention_days"
	keyRateLimitPrefix   = "rate_limits."
)

// Environment variables that override the configuration file.
//
//nolint:gosec // G101: These are variable names, not credentials.
const (
	EnvProjectID         = "GCPBLOCKS_PROJECT_ID"
	EnvAccessToken       = "GCPBLOCKS_ACCESS_TOKEN"
	EnvServiceAccountKey = "GCPBLOCKS_SERVICE_ACCOUNT_KEY"
	EnvCredentialsFile   = "GOOGLE_APPLICATION_CREDENTIALS"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
	readFile    func(string) ([]byte, error)
}

// NewSettingsService creates a new settings service reading overrides
// from the process environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
		readFile:    os.ReadFile,
	}
}

// WithEnv replaces the environment lookup. Used by tests.
func (s *SettingsService) WithEnv(getenv func(string) string) *SettingsService {
	s.getenv = getenv
	return s
}

// Get retrieves current application settings with environment overrides applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Project: domain.ProjectSettings{
			ID: s.configStore.GetString(keyProjectID),
		},
		Auth: domain.AuthSettings{
			AccessToken:           s.configStore.GetString(keyAccessToken),
			ServiceAccountKey:     s.configStore.GetString(keyServiceAccountKey),
			ServiceAccountKeyFile: s.configStore.GetString(keyKeyFile),
			UseDefaultCredentials: s.getBool(keyUseADC, false),
		},
		HTTP: domain.HTTPSettings{
			Timeout:   s.getDuration(keyHTTPTimeout, defaults.HTTP.Timeout),
			UserAgent: s.getString(keyHTTPUserAgent, defaults.HTTP.UserAgent),
		},
		RateLimits: s.getRateLimits(defaults.RateLimits),
		History: domain.HistorySettings{
			Enabled:       s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			RetentionDays: s.getInt(keyHistoryRetention, defaults.History.RetentionDays),
		},
	}

	s.applyEnv(settings)

	// An access token always wins, so the key file is only read without one.
	// A missing file leaves the key unset for Validate to report.
	auth := &settings.Auth
	if auth.AccessToken == "" && auth.ServiceAccountKey == "" && auth.ServiceAccountKeyFile != "" {
		data, err := s.readFile(auth.ServiceAccountKeyFile)
		if err != nil {
			logger.WithFields(logger.Fields{
				"gcpblocks.key_file": auth.ServiceAccountKeyFile,
			}).Warnf("read service account key file: %v", err)
		} else {
			auth.ServiceAccountKey = string(data)
		}
	}

	return settings, nil
}

// applyEnv overlays environment variables onto settings.
func (s *SettingsService) applyEnv(settings *domain.AppSettings) {
	if v := s.getenv(EnvProjectID); v != "" {
		settings.Project.ID = v
	}
	if v := s.getenv(EnvAccessToken); v != "" {
		settings.Auth.AccessToken = v
	}
	if v := s.getenv(EnvServiceAccountKey); v != "" {
		settings.Auth.ServiceAccountKey = v
	}
	if v := s.getenv(EnvCredentialsFile); v != "" && settings.Auth.ServiceAccountKeyFile == "" {
		settings.Auth.ServiceAccountKeyFile = v
	}
}

// Save persists application settings as given. Environment overrides are
// not separated out, so callers should save settings read from the store.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyProjectID, settings.Project.ID); err != nil {
		return fmt.Errorf("save project id: %w", err)
	}
	if settings.Auth.AccessToken != "" {
		if err := s.configStore.Set(keyAccessToken, settings.Auth.AccessToken); err != nil {
			return fmt.Errorf("save access token: %w", err)
		}
	}
	if settings.Auth.ServiceAccountKey != "" && settings.Auth.ServiceAccountKeyFile == "" {
		if err := s.configStore.Set(keyServiceAccountKey, settings.Auth.ServiceAccountKey); err != nil {
			return fmt.Errorf("save service account key: %w", err)
		}
	}
	if settings.Auth.ServiceAccountKeyFile != "" {
		if err := s.configStore.Set(keyKeyFile, settings.Auth.ServiceAccountKeyFile); err != nil {
			return fmt.Errorf("save service account key file: %w", err)
		}
	}
	if err := s.configStore.Set(keyUseADC, settings.Auth.UseDefaultCredentials); err != nil {
		return fmt.Errorf("save use_default_credentials: %w", err)
	}

	if err := s.configStore.Set(keyHTTPTimeout, settings.HTTP.Timeout.String()); err != nil {
		return fmt.Errorf("save http timeout: %w", err)
	}
	if err := s.configStore.Set(keyHTTPUserAgent, settings.HTTP.UserAgent); err != nil {
		return fmt.Errorf("save http user_agent: %w", err)
	}

	for svc, rl := range settings.RateLimits {
		prefix := keyRateLimitPrefix + svc.String() + "."
		if err := s.configStore.Set(prefix+"requests_per_second", rl.RequestsPerSecond); err != nil {
			return fmt.Errorf("save rate limit for %s: %w", svc, err)
		}
		if err := s.configStore.Set(prefix+"burst", rl.Burst); err != nil {
			return fmt.Errorf("save rate limit burst for %s: %w", svc, err)
		}
	}

	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryRetention, settings.History.RetentionDays); err != nil {
		return fmt.Errorf("save history retention_days: %w", err)
	}

	return nil
}

// Set updates a single setting by its dotted key, converting the value
// to the key's type.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyProjectID, keyAccessToken, keyServiceAccountKey, keyKeyFile, keyHTTPUserAgent:
		return s.configStore.Set(key, value)

	case keyUseADC, keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, b)

	case keyHTTPTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: %s expects a duration such as 30s", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, d.String())

	case keyHistoryRetention:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s expects a non-negative integer", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, n)
	}

	if svc, field, ok := parseRateLimitKey(key); ok {
		switch field {
		case "requests_per_second":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil || f < 0 {
				return fmt.Errorf("%w: %s expects a non-negative number", domain.ErrInvalidInput, key)
			}
			return s.configStore.Set(keyRateLimitPrefix+svc.String()+"."+field, f)
		case "burst":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fmt.Errorf("%w: %s expects a non-negative integer", domain.ErrInvalidInput, key)
			}
			return s.configStore.Set(keyRateLimitPrefix+svc.String()+"."+field, n)
		}
	}

	return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
}

// SetAccessToken stores a caller-supplied access token.
func (s *SettingsService) SetAccessToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: access token is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyAccessToken, token)
}

// SetServiceAccountKey stores service-account key JSON.
func (s *SettingsService) SetServiceAccountKey(keyJSON string) error {
	keyJSON = strings.TrimSpace(keyJSON)
	if !strings.HasPrefix(keyJSON, "{") {
		return fmt.Errorf("%w: service account key must be JSON", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyServiceAccountKey, keyJSON)
}

// Validate checks that current settings can be used to invoke a block.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Keys returns the settable keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyProjectID, keyAccessToken, keyServiceAccountKey, keyKeyFile, keyUseADC,
		keyHTTPTimeout, keyHTTPUserAgent, keyHistoryEnabled, keyHistoryRetention,
	}
	for _, svc := range domain.AllServices() {
		keys = append(keys,
			keyRateLimitPrefix+svc.String()+".requests_per_second",
			keyRateLimitPrefix+svc.String()+".burst",
		)
	}
	sort.Strings(keys)
	return keys
}

// parseRateLimitKey splits "rate_limits.storage.burst" into its parts.
func parseRateLimitKey(key string) (domain.Service, string, bool) {
	rest, ok := strings.CutPrefix(key, keyRateLimitPrefix)
	if !ok {
		return "", "", false
	}
	svc, field, ok := strings.Cut(rest, ".")
	if !ok || !domain.Service(svc).IsValid() {
		return "", "", false
	}
	return domain.Service(svc), field, true
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		if secs := s.configStore.GetInt(key); secs > 0 {
			return time.Duration(secs) * time.Second
		}
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getRateLimits(defaults map[domain.Service]domain.RateLimitSettings) map[domain.Service]domain.RateLimitSettings {
	limits := make(map[domain.Service]domain.RateLimitSettings, len(defaults))
	for svc, def := range defaults {
		prefix := keyRateLimitPrefix + svc.String() + "."
		limits[svc] = domain.RateLimitSettings{
			RequestsPerSecond: s.getFloat(prefix+"requests_per_second", def.RequestsPerSecond),
			Burst:             s.getInt(prefix+"burst", def.Burst),
		}
	}
	return limits
}
