package context

import (
	"context"
	"sync"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// KeyIdentityCache is the key for storing the request-scoped identity cache in context.
const KeyIdentityCache ContextKey = "identity_cache"

// IdentityCache memoizes resolved identities for the lifetime of one request.
type IdentityCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entity.Identity
}

// NewIdentityCache creates an empty cache.
func NewIdentityCache() *IdentityCache {
	return &IdentityCache{entries: make(map[uuid.UUID]*entity.Identity)}
}

// Get returns the cached identity for id, if any.
func (c *IdentityCache) Get(id uuid.UUID) (*entity.Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	identity, ok := c.entries[id]

	return identity, ok
}

// Put stores a resolved identity.
func (c *IdentityCache) Put(identity *entity.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[identity.AccountID] = identity
}

// WithIdentityCache returns a new context carrying the cache.
func WithIdentityCache(ctx context.Context, cache *IdentityCache) context.Context {
	return context.WithValue(ctx, KeyIdentityCache, cache)
}

// GetIdentityCache extracts the identity cache from context.Context.
// If not found, returns nil.
func GetIdentityCache(ctx context.Context) *IdentityCache {
	if cache, ok := ctx.Value(KeyIdentityCache).(*IdentityCache); ok {
		return cache
	}

	return nil
}
