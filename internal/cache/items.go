// Package cache holds the Redis-backed read cache for item listings.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ductran2702/code-challenge-backend/internal/model/item"
	"github.com/redis/go-redis/v9"
)

const (
	generationKey = "items:list:gen"
	listKeyFormat = "items:list:v%d:%s"
)

// ItemListCache caches GET /items results keyed by the lowercased name filter.
//
// Every write bumps a generation counter instead of deleting keys, so all
// cached listings become unreachable at once and expire on their own.
type ItemListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewItemListCache(client *redis.Client, ttl time.Duration) *ItemListCache {
	return &ItemListCache{
		client: client,
		ttl:    ttl,
	}
}

// Key returns the key listings for filter live under in the current
// generation. Read and fill a listing with the same key: a fill that
// races with Invalidate then lands on a generation nobody reads anymore.
func (c *ItemListCache) Key(ctx context.Context, filter string) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to read item list generation: %w", err)
	}

	return fmt.Sprintf(listKeyFormat, gen, strings.ToLower(filter)), nil
}

// Get returns the listing stored under key. The boolean is false on a miss.
func (c *ItemListCache) Get(ctx context.Context, key string) ([]item.Item, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read item list from redis: %w", err)
	}

	var items []item.Item
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal item list: %w", err)
	}

	return items, true, nil
}

// Set stores a listing under key.
func (c *ItemListCache) Set(ctx context.Context, key string, items []item.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal item list: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write item list to redis: %w", err)
	}
	return nil
}

// Invalidate drops every cached listing.
func (c *ItemListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("failed to bump item list generation: %w", err)
	}
	return nil
}
