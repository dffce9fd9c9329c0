package lark

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const defaultCleanupInterval = 10 * time.Minute

// TokenCache provides tenant access token caching.
type TokenCache struct {
	cache  *cache.Cache
	client *Client
	margin time.Duration
}

// NewTokenCache creates a new token cache instance.
// Tokens are kept until margin before Lark says they expire.
func NewTokenCache(client *Client, margin time.Duration) *TokenCache {
	return &TokenCache{
		cache:  cache.New(cache.NoExpiration, defaultCleanupInterval),
		client: client,
		margin: margin,
	}
}

// Token returns a cached tenant access token, fetching a new one when needed.
// An empty token is returned as-is and never cached.
func (t *TokenCache) Token(ctx context.Context) (string, error) {
	if token, found := t.cache.Get(t.key()); found {
		return token.(string), nil
	}

	tat, err := t.client.TenantAccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get tenant access token: %w", err)
	}
	if ttl := tat.Expire - t.margin; tat.Token != "" && ttl > 0 {
		t.cache.Set(t.key(), tat.Token, ttl)
	}
	return tat.Token, nil
}

// Invalidate drops the cached token.
func (t *TokenCache) Invalidate() {
	t.cache.Delete(t.key())
}

func (t *TokenCache) key() string {
	return "tenant_access_token:" + t.client.AppID()
}
