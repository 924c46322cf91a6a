package auth

import (
	"context"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider returns a caller-supplied access token as-is.
// The token is never refreshed and scopes are ignored.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider for a caller-supplied token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// Token returns the configured token.
func (p *StaticTokenProvider) Token(_ context.Context, _ []string) (*domain.AccessToken, error) {
	if p.token == "" {
		return nil, domain.ErrMissingCredentials
	}
	return &domain.AccessToken{
		Value:  p.token,
		Type:   "Bearer",
		Source: domain.CredentialAccessToken,
	}, nil
}

// Source returns CredentialAccessToken.
func (p *StaticTokenProvider) Source() domain.CredentialSource {
	return domain.CredentialAccessToken
}
