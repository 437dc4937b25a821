package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized read model stored in Redis.
// Price is a decimal string. Fields are stored as a Redis hash.
type CachedProduct struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductCache provides structured read/write operations for product cache
// entries. Only single-record GET lookups are served from here.
// Key format: "product:{id}"
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a new ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, id uuid.UUID) (*CachedProduct, error) {
	key := c.key(id)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	pid, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedProduct{
		ID:          pid,
		Name:        vals["name"],
		Description: vals["description"],
		Price:       vals["price"],
		CreatedAt:   createdAt,
	}, nil
}

// Set writes a cached product as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ProductCache) Set(ctx context.Context, p *CachedProduct) error {
	key := c.key(p.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", p.ID.String(),
		"name", p.Name,
		"description", p.Description,
		"price", p.Price,
		"created_at", p.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ProductCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product. Called on every mutation so a replaced or
// deleted product never serves a stale read.
func (c *ProductCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "product:{id}"
func (c *ProductCache) key(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", productCacheKeyPrefix, id)
}
