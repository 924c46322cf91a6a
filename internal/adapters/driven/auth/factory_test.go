package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func TestFactory_ForSettings_Precedence(t *testing.T) {
	key := serviceAccountKey(t, "https://oauth2.example.invalid/token")
	f := NewFactory(nil)

	tests := []struct {
		name string
		auth domain.AuthSettings
		want domain.CredentialSource
	}{
		{"token over key", domain.AuthSettings{AccessToken: "t", ServiceAccountKey: key, UseDefaultCredentials: true}, domain.CredentialAccessToken},
		{"key over adc", domain.AuthSettings{ServiceAccountKey: key, UseDefaultCredentials: true}, domain.CredentialServiceAccountKey},
		{"adc when enabled", domain.AuthSettings{UseDefaultCredentials: true}, domain.CredentialDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := f.ForSettings(tt.auth)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Source())
		})
	}
}

func TestFactory_ForSettings_NothingConfigured(t *testing.T) {
	_, err := NewFactory(nil).ForSettings(domain.AuthSettings{})

	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestFactory_ForSettings_BadKey(t *testing.T) {
	_, err := NewFactory(nil).ForSettings(domain.AuthSettings{ServiceAccountKey: "{not json"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFactory_ReusesProviderForSameCredential(t *testing.T) {
	f := NewFactory(nil)

	a, err := f.ForSettings(domain.AuthSettings{AccessToken: "one"})
	require.NoError(t, err)
	b, err := f.ForSettings(domain.AuthSettings{AccessToken: "one"})
	require.NoError(t, err)
	c, err := f.ForSettings(domain.AuthSettings{AccessToken: "two"})
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestFactory_RotatedCredentialReplacesProvider(t *testing.T) {
	f := NewFactory(nil)

	for _, token := range []string{"one", "two", "three"} {
		_, err := f.ForSettings(domain.AuthSettings{AccessToken: token})
		require.NoError(t, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Len(t, f.providers, 1)
	assert.Equal(t, cacheKey(domain.CredentialAccessToken, "three"), f.providers[domain.CredentialAccessToken].key)
}

func TestFactory_SetHTTPClient(t *testing.T) {
	key := serviceAccountKey(t, "https://oauth2.example.invalid/token")
	f := NewFactory(&http.Client{Timeout: time.Second})

	static, err := f.ForSettings(domain.AuthSettings{AccessToken: "t"})
	require.NoError(t, err)
	minted, err := f.ForSettings(domain.AuthSettings{ServiceAccountKey: key})
	require.NoError(t, err)

	f.SetHTTPClient(&http.Client{Timeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, f.HTTPClient().Timeout)

	again, err := f.ForSettings(domain.AuthSettings{ServiceAccountKey: key})
	require.NoError(t, err)
	assert.NotSame(t, minted, again, "key provider rebuilt with the new client")

	same, err := f.ForSettings(domain.AuthSettings{AccessToken: "t"})
	require.NoError(t, err)
	assert.Same(t, static, same)
}
