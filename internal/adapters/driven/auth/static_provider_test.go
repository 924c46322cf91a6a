package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func TestStaticTokenProvider(t *testing.T) {
	p := NewStaticTokenProvider("ya29.token")

	tok, err := p.Token(context.Background(), []string{"ignored"})

	require.NoError(t, err)
	assert.Equal(t, "ya29.token", tok.Value)
	assert.Equal(t, "Bearer ya29.token", tok.AuthorizationHeader())
	assert.True(t, tok.Expiry.IsZero())
	assert.Equal(t, domain.CredentialAccessToken, p.Source())
}

func TestStaticTokenProvider_Empty(t *testing.T) {
	_, err := NewStaticTokenProvider("").Token(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}
