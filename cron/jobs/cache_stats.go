package jobs

import (
	"log"

	"shopwidget.GO/core/cache"
)

// CacheStatsJob logs the in-process search cache size. Redis-backed caching
// reports through Redis tooling instead, so this only covers the local cache.
func CacheStatsJob(args ...string) {
	c := cache.GetInstance()
	log.Printf("cache stats: %d live entries, %d tagged search", c.Len(), len(c.GetKeysByTag("search")))
}
