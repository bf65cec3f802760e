package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const categoriesCacheKey = "catalog:categories"

// Cache stores upstream pages and the category list in Redis so repeated
// queries for the same (category, sort) key skip the flaky upstream. A nil
// Cache (or one without a client) is a no-op.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetPage loads a cached upstream page. ok is false on miss or any storage
// failure; cache trouble must never surface as a catalog error.
func (c *Cache) GetPage(ctx context.Context, key string) ([]Product, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetPage stores an upstream page under its cache key.
func (c *Cache) SetPage(ctx context.Context, key string, products []Product) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, data, c.ttl).Err()
}

// GetCategories loads the cached category list.
func (c *Cache) GetCategories(ctx context.Context) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, categoriesCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false
	}
	return categories, true
}

// SetCategories stores the category list.
func (c *Cache) SetCategories(ctx context.Context, categories []string) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, categoriesCacheKey, data, c.ttl).Err()
}
