package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialSource_Description(t *testing.T) {
	tests := []struct {
		source   CredentialSource
		expected string
	}{
		{CredentialAccessToken, "Access token"},
		{CredentialServiceAccountKey, "Service account key"},
		{CredentialDefault, "Application default credentials"},
		{CredentialSource("other"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.source.Description())
		})
	}
}

func TestAuthSettings_Source(t *testing.T) {
	tests := []struct {
		name     string
		auth     AuthSettings
		expected CredentialSource
	}{
		{"nothing configured", AuthSettings{}, ""},
		{"token only", AuthSettings{AccessToken: "t"}, CredentialAccessToken},
		{"key only", AuthSettings{ServiceAccountKey: "{}"}, CredentialServiceAccountKey},
		{"token wins over key", AuthSettings{AccessToken: "t", ServiceAccountKey: "{}"}, CredentialAccessToken},
		{"key wins over adc", AuthSettings{ServiceAccountKey: "{}", UseDefaultCredentials: true}, CredentialServiceAccountKey},
		{"adc opt in", AuthSettings{UseDefaultCredentials: true}, CredentialDefault},
		{"key file alone is not loaded", AuthSettings{ServiceAccountKeyFile: "/tmp/key.json"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.auth.Source())
			assert.Equal(t, tt.expected != "", tt.auth.IsConfigured())
		})
	}
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, 60*time.Second, s.HTTP.Timeout)
	assert.Equal(t, "gcpblocks", s.HTTP.UserAgent)
	assert.True(t, s.History.Enabled)
	assert.Equal(t, 30, s.History.RetentionDays)
	require.Len(t, s.RateLimits, 2)
	assert.Equal(t, 10, s.RateLimits[ServiceResourceManager].Burst)
	assert.Equal(t, float64(20), s.RateLimits[ServiceStorage].RequestsPerSecond)
	assert.False(t, s.Auth.IsConfigured())
}

func TestAppSettings_Validate(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		s := DefaultAppSettings()

		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingCredentials))
		assert.Contains(t, err.Error(), "one of serviceAccountKey or accessToken must be present")
	})

	t.Run("access token is enough", func(t *testing.T) {
		s := DefaultAppSettings()
		s.Auth.AccessToken = "ya29.token"

		assert.NoError(t, s.Validate())
	})

	t.Run("default credentials is enough", func(t *testing.T) {
		s := DefaultAppSettings()
		s.Auth.UseDefaultCredentials = true

		assert.NoError(t, s.Validate())
	})

	t.Run("negative timeout", func(t *testing.T) {
		s := DefaultAppSettings()
		s.Auth.AccessToken = "t"
		s.HTTP.Timeout = -time.Second

		assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
	})

	t.Run("negative rate limit", func(t *testing.T) {
		s := DefaultAppSettings()
		s.Auth.AccessToken = "t"
		s.RateLimits[ServiceStorage] = RateLimitSettings{RequestsPerSecond: -1}

		err := s.Validate()
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "storage")
	})
}
