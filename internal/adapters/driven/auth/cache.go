package auth

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
)

// refreshBuffer is how long before expiry a cached token is replaced.
const refreshBuffer = 5 * time.Minute

// tokenCache holds one token per scope set.
type tokenCache struct {
	mu     sync.RWMutex
	tokens map[string]*domain.AccessToken
}

func newTokenCache() *tokenCache {
	return &tokenCache{tokens: make(map[string]*domain.AccessToken)}
}

// scopeKey normalises a scope list so order does not matter.
func scopeKey(scopes []string) string {
	sorted := make([]string, len(scopes))
	copy(sorted, scopes)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

func (c *tokenCache) get(key string) (*domain.AccessToken, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tok, ok := c.tokens[key]
	if !ok || !fresh(tok) {
		return nil, false
	}
	return tok, true
}

func (c *tokenCache) put(key string, tok *domain.AccessToken) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[key] = tok
}

func fresh(tok *domain.AccessToken) bool {
	if tok.Expiry.IsZero() {
		return true
	}
	return time.Until(tok.Expiry) > refreshBuffer
}
