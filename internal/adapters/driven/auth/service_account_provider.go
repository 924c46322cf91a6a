package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
)

// Ensure ServiceAccountProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*ServiceAccountProvider)(nil)

// ServiceAccountProvider mints access tokens from a service-account JSON key
// using the JWT bearer flow. Tokens are cached per scope set.
type ServiceAccountProvider struct {
	keyJSON    []byte
	httpClient *http.Client

	// Serialises minting so concurrent callers share one exchange.
	mu    sync.Mutex
	cache *tokenCache
}

// NewServiceAccountProvider validates the key and creates a provider.
// httpClient is used for the token exchange; nil uses the default client.
func NewServiceAccountProvider(keyJSON []byte, httpClient *http.Client) (*ServiceAccountProvider, error) {
	if _, err := google.JWTConfigFromJSON(keyJSON); err != nil {
		return nil, fmt.Errorf("%w: parse service account key: %v", domain.ErrInvalidInput, err)
	}
	return &ServiceAccountProvider{
		keyJSON:    keyJSON,
		httpClient: httpClient,
		cache:      newTokenCache(),
	}, nil
}

// Token returns a cached token for scopes, minting a new one when the
// cached token is within the refresh buffer of expiry.
func (p *ServiceAccountProvider) Token(ctx context.Context, scopes []string) (*domain.AccessToken, error) {
	key := scopeKey(scopes)

	// Fast path: cached token
	if tok, ok := p.cache.get(key); ok {
		return tok, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring the lock
	if tok, ok := p.cache.get(key); ok {
		return tok, nil
	}

	cfg, err := google.JWTConfigFromJSON(p.keyJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parse service account key: %v", domain.ErrTokenAcquisition, err)
	}

	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}
	t, err := cfg.TokenSource(ctx).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: service account %s: %w", domain.ErrTokenAcquisition, cfg.Email, err)
	}

	tok := &domain.AccessToken{
		Value:  t.AccessToken,
		Type:   t.Type(),
		Expiry: t.Expiry,
		Source: domain.CredentialServiceAccountKey,
	}
	p.cache.put(key, tok)
	return tok, nil
}

// Source returns CredentialServiceAccountKey.
func (p *ServiceAccountProvider) Source() domain.CredentialSource {
	return domain.CredentialServiceAccountKey
}
