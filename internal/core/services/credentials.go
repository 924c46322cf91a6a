package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
	"github.com/custodia-labs/gcpblocks/internal/logger"
)

// CredentialResolver turns auth settings into an access token.
// Precedence is access token, then service-account key, then application
// default credentials when explicitly enabled.
type CredentialResolver struct {
	factory driven.TokenProviderFactory
}

// NewCredentialResolver creates a resolver backed by the given factory.
func NewCredentialResolver(factory driven.TokenProviderFactory) *CredentialResolver {
	return &CredentialResolver{factory: factory}
}

// Resolve returns a token carrying scopes. It fails with
// domain.ErrMissingCredentials before any network call when nothing is configured.
func (r *CredentialResolver) Resolve(ctx context.Context, auth domain.AuthSettings, scopes []string) (*domain.AccessToken, error) {
	if !auth.IsConfigured() {
		return nil, fmt.Errorf("%w: one of serviceAccountKey or accessToken must be present", domain.ErrMissingCredentials)
	}

	provider, err := r.factory.ForSettings(auth)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logger.Fields{
		"gcpblocks.credential": provider.Source(),
		"gcpblocks.scopes":     scopes,
	}).Debug("resolving access token")

	token, err := provider.Token(ctx, scopes)
	if err != nil {
		if errors.Is(err, domain.ErrTokenAcquisition) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrTokenAcquisition, provider.Source(), err)
	}
	if token.Source == "" {
		token.Source = provider.Source()
	}
	return token, nil
}
