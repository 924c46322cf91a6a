package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"cloud.google.com/go/auth/credentials"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
)

// Ensure DefaultCredentialsProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*DefaultCredentialsProvider)(nil)

// DefaultCredentialsProvider uses application default credentials: the
// GOOGLE_APPLICATION_CREDENTIALS file, gcloud user credentials, or the
// metadata server. It is only used when explicitly enabled.
type DefaultCredentialsProvider struct {
	httpClient *http.Client

	mu    sync.Mutex
	cache *tokenCache
}

// NewDefaultCredentialsProvider creates an ADC-backed provider.
func NewDefaultCredentialsProvider(httpClient *http.Client) *DefaultCredentialsProvider {
	return &DefaultCredentialsProvider{
		httpClient: httpClient,
		cache:      newTokenCache(),
	}
}

// Token detects default credentials for scopes and returns a token.
func (p *DefaultCredentialsProvider) Token(ctx context.Context, scopes []string) (*domain.AccessToken, error) {
	key := scopeKey(scopes)
	if tok, ok := p.cache.get(key); ok {
		return tok, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if tok, ok := p.cache.get(key); ok {
		return tok, nil
	}

	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		Scopes: scopes,
		Client: p.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: detect default credentials: %w", domain.ErrTokenAcquisition, err)
	}

	t, err := creds.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: default credentials: %w", domain.ErrTokenAcquisition, err)
	}

	tok := &domain.AccessToken{
		Value:  t.Value,
		Type:   t.Type,
		Expiry: t.Expiry,
		Source: domain.CredentialDefault,
	}
	p.cache.put(key, tok)
	return tok, nil
}

// Source returns CredentialDefault.
func (p *DefaultCredentialsProvider) Source() domain.CredentialSource {
	return domain.CredentialDefault
}
