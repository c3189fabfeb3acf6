package cache

import "time"

// CacheService is the read-through TTL cache used for short-lived lookups.
// Implementations must be safe for concurrent use. Entries expire on their
// own; there is deliberately no invalidation surface.
type CacheService interface {
	// Get returns the stored value and true, or nil and false after expiry.
	Get(key string) (interface{}, bool)

	// Set stores value under key for ttl.
	Set(key string, value interface{}, ttl time.Duration)
}
