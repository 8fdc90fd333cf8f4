package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"shopwidget.GO/config"
	"shopwidget.GO/core/cache"
	"shopwidget.GO/model"
)

const cacheTTLSeconds = 60

// Cached wraps a Searcher with a short-lived response cache: Redis when
// configured, the in-process cache otherwise. UPC lookups are repeated a lot
// when a shared link is passed around, and index contents move slowly.
type Cached struct {
	next Searcher
}

func NewCached(next Searcher) *Cached {
	return &Cached{next: next}
}

func cacheKey(upc string, near *model.GeoPoint) string {
	if near == nil {
		return fmt.Sprintf("search:%s:nogeo", upc)
	}
	// Requesters within ~1km share an entry.
	return fmt.Sprintf("search:%s:%.2f,%.2f", upc, near.Lat, near.Lng)
}

func (c *Cached) Search(ctx context.Context, upc string, near *model.GeoPoint) ([]model.Candidate, error) {
	key := cacheKey(upc, near)

	if hits, ok := c.lookup(ctx, key); ok {
		return hits, nil
	}

	hits, err := c.next.Search(ctx, upc, near)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, hits)
	return hits, nil
}

func (c *Cached) lookup(ctx context.Context, key string) ([]model.Candidate, bool) {
	if config.RedisClient != nil {
		raw, err := config.RedisClient.Get(ctx, key).Bytes()
		if err == nil {
			var hits []model.Candidate
			if json.Unmarshal(raw, &hits) == nil {
				return hits, true
			}
		}
		return nil, false
	}
	if v, ok := cache.GetInstance().Get(key); ok {
		if hits, isHits := v.([]model.Candidate); isHits {
			return hits, true
		}
	}
	return nil, false
}

func (c *Cached) store(ctx context.Context, key string, hits []model.Candidate) {
	if config.RedisClient != nil {
		raw, err := json.Marshal(hits)
		if err != nil {
			return
		}
		if err := config.RedisClient.Set(ctx, key, raw, cacheTTLSeconds*time.Second).Err(); err != nil {
			log.Printf("search cache: redis set failed: %v", err)
		}
		return
	}
	cache.GetInstance().Set(key, hits, cacheTTLSeconds, []string{"search"})
}
