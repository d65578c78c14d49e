package cache

import (
	"context"
	"fmt"
	"strconv"
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
// Fields are stored as a Redis hash. It carries exactly what label batch
// assembly needs, so batch-by-product requests can often skip Postgres.
type CachedProduct struct {
	ID        uuid.UUID `json:"id"`
	OrgID     uuid.UUID `json:"org_id"`
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductCache provides structured read/write operations for product cache entries.
// Keys are scoped by orgID to prevent cross-tenant data leakage.
// Key format: "product:{orgID}:{productID}"
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a new ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by org + product ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, orgID, productID uuid.UUID) (*CachedProduct, error) {
	key := c.key(orgID, productID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	oid, err := uuid.Parse(vals["org_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse org_id: %w", err)
	}
	price, err := strconv.ParseInt(vals["price"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedProduct{
		ID:        id,
		OrgID:     oid,
		Barcode:   vals["barcode"],
		Name:      vals["name"],
		Price:     price,
		CreatedAt: createdAt,
	}, nil
}

// Set writes a cached product as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ProductCache) Set(ctx context.Context, product *CachedProduct) error {
	key := c.key(product.OrgID, product.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", product.ID.String(),
		"org_id", product.OrgID.String(),
		"barcode", product.Barcode,
		"name", product.Name,
		"price", strconv.FormatInt(product.Price, 10),
		"created_at", product.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ProductCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product.
func (c *ProductCache) Delete(ctx context.Context, orgID, productID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(orgID, productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "product:{orgID}:{productID}"
func (c *ProductCache) key(orgID, productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", productCacheKeyPrefix, orgID, productID)
}
