package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

func TestNewServiceAccountProvider_InvalidKey(t *testing.T) {
	_, err := NewServiceAccountProvider([]byte(`{"type":"service_account"`), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceAccountProvider_MintsAndCaches(t *testing.T) {
	server := newTokenServer(t, http.StatusOK)
	p, err := NewServiceAccountProvider([]byte(serviceAccountKey(t, server.URL)), server.Client())
	require.NoError(t, err)
	ctx := context.Background()

	first, err := p.Token(ctx, []string{"scope-b", "scope-a"})
	require.NoError(t, err)
	assert.Equal(t, "minted-1", first.Value)
	assert.Equal(t, domain.CredentialServiceAccountKey, first.Source)
	assert.False(t, first.Expiry.IsZero())

	// Same scope set in a different order hits the cache.
	again, err := p.Token(ctx, []string{"scope-a", "scope-b"})
	require.NoError(t, err)
	assert.Equal(t, "minted-1", again.Value)
	assert.Equal(t, int32(1), server.calls.Load())

	// A different scope set mints a new token.
	other, err := p.Token(ctx, []string{"scope-c"})
	require.NoError(t, err)
	assert.Equal(t, "minted-2", other.Value)
	assert.Equal(t, int32(2), server.calls.Load())
}

func TestServiceAccountProvider_ExchangeFailure(t *testing.T) {
	server := newTokenServer(t, http.StatusBadRequest)
	p, err := NewServiceAccountProvider([]byte(serviceAccountKey(t, server.URL)), server.Client())
	require.NoError(t, err)

	_, err = p.Token(context.Background(), []string{"scope-a"})

	require.ErrorIs(t, err, domain.ErrTokenAcquisition)
	assert.Contains(t, err.Error(), "blocks@my-project.iam.gserviceaccount.com")
}
