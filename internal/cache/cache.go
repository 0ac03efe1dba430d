// Package cache implements the short-lived store for merged trending pages.
//
// Entries are keyed by the normalized filter combination and expire after a
// fixed TTL. An expired key is indistinguishable from a missing one. Writes
// replace the stored slice wholesale; a slice handed out by Get is never
// mutated afterwards, so callers may treat it as an immutable snapshot.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/youcisla/streamsub/internal/models"
)

// Cache is the interface consumed by the trending service.
type Cache interface {
	Get(key string) ([]models.StreamSummary, bool)
	Set(key string, data []models.StreamSummary, ttl time.Duration)
}

type item struct {
	key        string
	data       []models.StreamSummary
	expiration time.Time
}

// TrendingCache is an LRU-bounded TTL cache of ranked stream lists.
type TrendingCache struct {
	capacity  int
	items     map[string]*list.Element
	evictList *list.List
	mu        sync.RWMutex
	now       func() time.Time
}

// New creates a TrendingCache holding at most capacity keys.
func New(capacity int) *TrendingCache {
	return &TrendingCache{
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
		now:       time.Now,
	}
}

// SetClock overrides the time source. Intended for tests.
func (c *TrendingCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Get returns the live entry for key, or ok=false on a miss or after expiry.
func (c *TrendingCache) Get(key string) ([]models.StreamSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}

	it := elem.Value.(*item)
	if c.now().After(it.expiration) {
		c.removeElement(elem)
		return nil, false
	}

	c.evictList.MoveToFront(elem)
	return it.data, true
}

// Set stores data under key for ttl, replacing any previous entry.
func (c *TrendingCache) Set(key string, data []models.StreamSummary, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(ttl)

	if elem, ok := c.items[key]; ok {
		it := elem.Value.(*item)
		it.data = data
		it.expiration = expiration
		c.evictList.MoveToFront(elem)
		return
	}

	elem := c.evictList.PushFront(&item{key: key, data: data, expiration: expiration})
	c.items[key] = elem

	if c.evictList.Len() > c.capacity {
		if oldest := c.evictList.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// CleanExpired drops every entry whose TTL has elapsed.
func (c *TrendingCache) CleanExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var stale []*list.Element
	for elem := c.evictList.Back(); elem != nil; elem = elem.Prev() {
		if now.After(elem.Value.(*item).expiration) {
			stale = append(stale, elem)
		}
	}
	for _, elem := range stale {
		c.removeElement(elem)
	}
}

// Len reports the number of stored keys, expired or not.
func (c *TrendingCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.evictList.Len()
}

func (c *TrendingCache) removeElement(elem *list.Element) {
	c.evictList.Remove(elem)
	delete(c.items, elem.Value.(*item).key)
}
