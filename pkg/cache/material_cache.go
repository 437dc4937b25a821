package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// MaterialCacheTTL is the time-to-live for cached raw materials.
	MaterialCacheTTL = 24 * time.Hour

	materialCacheKeyPrefix = "rawmaterial"
)

// CachedMaterial is the denormalized read model stored in Redis.
// Cost and CurrentStock are decimal strings; the cache never does arithmetic
// on them. Fields are stored as a Redis hash.
type CachedMaterial struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Cost         string    `json:"cost"`
	CurrentStock string    `json:"current_stock"`
	CreatedAt    time.Time `json:"created_at"`
}

// MaterialCache provides structured read/write operations for raw material
// cache entries. It serves only single-record GET lookups; the producibility
// query always reads stock straight from the store.
// Key format: "rawmaterial:{id}"
type MaterialCache struct {
	client *RedisClient
}

// NewMaterialCache creates a new MaterialCache backed by the given RedisClient.
func NewMaterialCache(r *RedisClient) *MaterialCache {
	return &MaterialCache{client: r}
}

// Get retrieves a cached raw material by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *MaterialCache) Get(ctx context.Context, id uuid.UUID) (*CachedMaterial, error) {
	key := c.key(id)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	mid, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedMaterial{
		ID:           mid,
		Name:         vals["name"],
		Description:  vals["description"],
		Cost:         vals["cost"],
		CurrentStock: vals["current_stock"],
		CreatedAt:    createdAt,
	}, nil
}

// Set writes a cached raw material as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *MaterialCache) Set(ctx context.Context, m *CachedMaterial) error {
	key := c.key(m.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", m.ID.String(),
		"name", m.Name,
		"description", m.Description,
		"cost", m.Cost,
		"current_stock", m.CurrentStock,
		"created_at", m.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, MaterialCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached raw material. Called on every mutation (upsert,
// replace, delete) so stale stock never serves a read.
func (c *MaterialCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "rawmaterial:{id}"
func (c *MaterialCache) key(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", materialCacheKeyPrefix, id)
}
