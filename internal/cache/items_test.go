package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ductran2702/code-challenge-backend/internal/model"
	"github.com/ductran2702/code-challenge-backend/internal/model/item"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*miniredis.Miniredis, *ItemListCache) {
	t.Helper()

	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	return s, NewItemListCache(client, time.Minute)
}

func sampleItems() []item.Item {
	desc := "first"
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	return []item.Item{
		{Base: model.Base{ID: 2, CreatedAt: created, UpdatedAt: created}, Name: "Beta"},
		{Base: model.Base{ID: 1, CreatedAt: created, UpdatedAt: created}, Name: "Alpha", Description: &desc},
	}
}

func key(t *testing.T, c *ItemListCache, filter string) string {
	t.Helper()

	k, err := c.Key(context.Background(), filter)
	require.NoError(t, err)
	return k
}

func TestItemListCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		_, c := newCache(t)
		k := key(t, c, "")

		_, ok, err := c.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, c.Set(ctx, k, sampleItems()))

		got, ok, err := c.Get(ctx, k)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, sampleItems(), got)
	})

	t.Run("filters are case insensitive", func(t *testing.T) {
		_, c := newCache(t)

		assert.Equal(t, "items:list:v0:alp", key(t, c, "Alp"))
		assert.Equal(t, key(t, c, "Alp"), key(t, c, "aLP"))
	})

	t.Run("empty listing is cached as empty", func(t *testing.T) {
		_, c := newCache(t)
		k := key(t, c, "none")

		require.NoError(t, c.Set(ctx, k, []item.Item{}))

		got, ok, err := c.Get(ctx, k)
		require.NoError(t, err)
		require.True(t, ok)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("invalidate drops every listing", func(t *testing.T) {
		_, c := newCache(t)

		require.NoError(t, c.Set(ctx, key(t, c, ""), sampleItems()))
		require.NoError(t, c.Set(ctx, key(t, c, "alp"), sampleItems()[1:]))
		require.NoError(t, c.Invalidate(ctx))

		for _, filter := range []string{"", "alp"} {
			_, ok, err := c.Get(ctx, key(t, c, filter))
			require.NoError(t, err)
			assert.False(t, ok, filter)
		}
	})

	t.Run("fill after invalidate is not visible", func(t *testing.T) {
		_, c := newCache(t)
		before := key(t, c, "")

		require.NoError(t, c.Invalidate(ctx))
		require.NoError(t, c.Set(ctx, before, sampleItems()))

		after := key(t, c, "")
		assert.NotEqual(t, before, after)

		_, ok, err := c.Get(ctx, after)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("entries expire", func(t *testing.T) {
		s, c := newCache(t)
		k := key(t, c, "")

		require.NoError(t, c.Set(ctx, k, sampleItems()))
		s.FastForward(2 * time.Minute)

		_, ok, err := c.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("redis failure surfaces as error", func(t *testing.T) {
		s, c := newCache(t)
		k := key(t, c, "")
		s.Close()

		_, err := c.Key(ctx, "")
		assert.Error(t, err)
		_, _, err = c.Get(ctx, k)
		assert.Error(t, err)
		assert.Error(t, c.Set(ctx, k, sampleItems()))
		assert.Error(t, c.Invalidate(ctx))
	})
}
