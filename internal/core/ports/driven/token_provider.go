package driven

import (
	"context"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// TokenProvider provides access tokens for authenticated API calls.
// Implementations cache and refresh tokens transparently.
type TokenProvider interface {
	// Token returns a valid access token carrying the given OAuth scopes.
	// Providers backed by a caller-supplied token ignore scopes.
	Token(ctx context.Context, scopes []string) (*domain.AccessToken, error)

	// Source returns the credential source backing this provider.
	Source() domain.CredentialSource
}

// TokenProviderFactory builds a TokenProvider from auth settings.
type TokenProviderFactory interface {
	// ForSettings returns the provider for the highest-precedence configured
	// credential. Returns domain.ErrMissingCredentials when none is configured.
	ForSettings(auth domain.AuthSettings) (TokenProvider, error)
}
