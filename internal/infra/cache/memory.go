package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/m04kA/SMC-DeliveryService/pkg/cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache возвращает in-memory реализацию cache.CacheService поверх
// go-cache. defaultTTL применяется к записям без явного срока,
// cleanupInterval задаёт период выметания протухших записей.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) cache.CacheService {
	return &memoryCache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (c *memoryCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *memoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}
