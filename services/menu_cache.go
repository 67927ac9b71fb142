package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/bhagatankit05/Restuarant-App/entity"
	"github.com/redis/go-redis/v9"
)

const (
	menuCacheKey = "menu:available"
	menuCacheTTL = 10 * time.Minute
)

// MenuCache is an optional redis cache for the available-menu listing, the
// hottest read in the system. A nil *MenuCache is a no-op, so callers never
// branch on whether caching is configured.
type MenuCache struct {
	client *redis.Client
}

func NewMenuCache(addr string) *MenuCache {
	if addr == "" {
		return nil
	}
	return &MenuCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *MenuCache) Get(ctx context.Context) ([]entity.MenuItem, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []entity.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *MenuCache) Set(ctx context.Context, items []entity.MenuItem) {
	if c == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, menuCacheKey, data, menuCacheTTL).Err(); err != nil {
		log.Printf("menu cache set failed: %v", err)
	}
}

// Invalidate drops the cached listing after any catalog write.
func (c *MenuCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, menuCacheKey).Err(); err != nil {
		log.Printf("menu cache invalidate failed: %v", err)
	}
}
