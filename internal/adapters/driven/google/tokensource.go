package google

import (
	"fmt"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// TokenSourceAdapter adapts a resolved domain.AccessToken to oauth2.TokenSource
// so generated Google API clients can use it.
type TokenSourceAdapter struct {
	token *domain.AccessToken
}

// NewTokenSource creates an oauth2.TokenSource from an access token.
// The returned TokenSource can be used with option.WithTokenSource() or
// an oauth2.Transport.
func NewTokenSource(token *domain.AccessToken) oauth2.TokenSource {
	return &TokenSourceAdapter{token: token}
}

// Token implements oauth2.TokenSource.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	if t.token == nil || t.token.Value == "" {
		return nil, domain.ErrMissingCredentials
	}
	if t.token.IsExpired() {
		return nil, fmt.Errorf("%w: access token expired at %s", domain.ErrTokenAcquisition, t.token.Expiry)
	}

	tokenType := t.token.Type
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &oauth2.Token{
		AccessToken: t.token.Value,
		TokenType:   tokenType,
		Expiry:      t.token.Expiry,
	}, nil
}
