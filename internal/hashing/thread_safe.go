package hashing

import "sync"

// ThreadSafeNodeCache wraps NodeCache with mutex protection for concurrent access.
type ThreadSafeNodeCache struct {
	cache *NodeCache
	mu    sync.Mutex
}

// NewThreadSafeNodeCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeNodeCache(maxCapacity int) *ThreadSafeNodeCache {
	return &ThreadSafeNodeCache{
		cache: NewNodeCache(maxCapacity),
	}
}

// Lookup returns the node count stored for hash at depth.
func (c *ThreadSafeNodeCache) Lookup(hash uint64, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(hash, depth)
}

// Store records the node count for hash at depth.
func (c *ThreadSafeNodeCache) Store(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(hash, depth, nodes)
}

// Len returns the number of stored entries.
func (c *ThreadSafeNodeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafeNodeCache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Hits()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafeNodeCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}
