package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sync"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.TokenProviderFactory = (*Factory)(nil)

// Factory creates TokenProviders from auth settings. The current provider
// per credential source is reused while its credential is unchanged, so its
// token cache survives across invocations and config reloads. A rotated
// credential replaces the provider for that source.
type Factory struct {
	mu         sync.Mutex
	httpClient *http.Client
	providers  map[domain.CredentialSource]cachedProvider
}

type cachedProvider struct {
	key      string
	provider driven.TokenProvider
}

// NewFactory creates a token provider factory. httpClient is used for
// token exchanges; nil uses the default client.
func NewFactory(httpClient *http.Client) *Factory {
	return &Factory{
		httpClient: httpClient,
		providers:  make(map[domain.CredentialSource]cachedProvider),
	}
}

// SetHTTPClient replaces the client used for token exchanges. Providers that
// mint tokens over the network are dropped so the next call picks it up.
func (f *Factory) SetHTTPClient(httpClient *http.Client) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.httpClient = httpClient
	delete(f.providers, domain.CredentialServiceAccountKey)
	delete(f.providers, domain.CredentialDefault)
}

// HTTPClient returns the client used for token exchanges.
func (f *Factory) HTTPClient() *http.Client {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.httpClient
}

// ForSettings returns the provider for the highest-precedence configured
// credential: access token, then service-account key, then default credentials.
func (f *Factory) ForSettings(auth domain.AuthSettings) (driven.TokenProvider, error) {
	source := auth.Source()

	var secret string
	switch source {
	case domain.CredentialAccessToken:
		secret = auth.AccessToken
	case domain.CredentialServiceAccountKey:
		secret = auth.ServiceAccountKey
	case domain.CredentialDefault:
	default:
		return nil, domain.ErrMissingCredentials
	}

	key := cacheKey(source, secret)

	f.mu.Lock()
	defer f.mu.Unlock()

	if cached, ok := f.providers[source]; ok && cached.key == key {
		return cached.provider, nil
	}

	var provider driven.TokenProvider
	switch source {
	case domain.CredentialAccessToken:
		provider = NewStaticTokenProvider(auth.AccessToken)
	case domain.CredentialServiceAccountKey:
		p, err := NewServiceAccountProvider([]byte(auth.ServiceAccountKey), f.httpClient)
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		provider = NewDefaultCredentialsProvider(f.httpClient)
	}

	f.providers[source] = cachedProvider{key: key, provider: provider}
	return provider, nil
}

// cacheKey identifies a credential without keeping the secret in memory twice.
func cacheKey(source domain.CredentialSource, secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return source.String() + ":" + hex.EncodeToString(sum[:])
}
