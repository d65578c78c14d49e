package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// DocumentCacheTTL bounds how long an assembled batch document stays
	// downloadable. Batches are cheap to re-render; this is a convenience
	// window, not durable storage.
	DocumentCacheTTL = time.Hour

	documentCacheKeyPrefix = "label:batch"
)

// DocumentCache stores assembled batch documents (HTML) by batch ID so a
// batch can be re-downloaded without re-rendering.
type DocumentCache struct {
	client *RedisClient
}

// NewDocumentCache creates a DocumentCache backed by the given RedisClient.
func NewDocumentCache(r *RedisClient) *DocumentCache {
	return &DocumentCache{client: r}
}

// Get retrieves a cached document. Returns redis.Nil when absent or expired.
func (c *DocumentCache) Get(ctx context.Context, batchID uuid.UUID) (string, error) {
	doc, err := c.client.Client().Get(ctx, c.key(batchID)).Result()
	if err != nil {
		return "", fmt.Errorf("document cache get: %w", err)
	}
	return doc, nil
}

// Set stores a document under batchID with the standard TTL.
func (c *DocumentCache) Set(ctx context.Context, batchID uuid.UUID, document string) error {
	if err := c.client.Client().Set(ctx, c.key(batchID), document, DocumentCacheTTL).Err(); err != nil {
		return fmt.Errorf("document cache set: %w", err)
	}
	return nil
}

// key builds the Redis key: "label:batch:{batchID}"
func (c *DocumentCache) key(batchID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", documentCacheKeyPrefix, batchID)
}
