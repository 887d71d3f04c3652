package context

import (
	"context"
	"testing"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityCache(t *testing.T) {
	cache := NewIdentityCache()
	id := uuid.New()

	_, ok := cache.Get(id)
	assert.False(t, ok)

	cache.Put(&entity.Identity{AccountID: id, DisplayName: "Ah Seng Char Kuey Teow"})

	got, ok := cache.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Ah Seng Char Kuey Teow", got.DisplayName)
}

func TestGetIdentityCache(t *testing.T) {
	assert.Nil(t, GetIdentityCache(context.Background()))

	cache := NewIdentityCache()
	ctx := WithIdentityCache(context.Background(), cache)
	assert.Same(t, cache, GetIdentityCache(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	assert.Nil(t, GetLoggerOrDefault(context.Background(), nil))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}
