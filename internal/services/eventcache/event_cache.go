package eventcache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// EventCache remembers recently delivered event ids so redeliveries are skipped.
type EventCache struct {
	cache *cache.Cache
}

// NewEventCache creates an EventCache that forgets ids after ttl.
// A non-positive ttl disables the cache: nothing is ever reported as seen.
func NewEventCache(ttl time.Duration) *EventCache {
	if ttl <= 0 {
		return &EventCache{}
	}
	return &EventCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

// MarkSeen records id and reports whether it was already recorded.
// Empty ids are never recorded.
func (e *EventCache) MarkSeen(id string) bool {
	if e.cache == nil || id == "" {
		return false
	}
	return e.cache.Add(id, struct{}{}, cache.DefaultExpiration) != nil
}

// Forget removes id so a redelivery of the same event is processed again.
func (e *EventCache) Forget(id string) {
	if e.cache == nil || id == "" {
		return
	}
	e.cache.Delete(id)
}
