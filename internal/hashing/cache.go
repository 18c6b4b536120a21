package hashing

// cacheKey identifies a subtree: a position and the depth searched below it.
type cacheKey struct {
	hash  uint64
	depth int
}

// NodeCache remembers leaf-node counts of already searched subtrees.
type NodeCache struct {
	// entries maps subtree keys to their node counts
	entries map[cacheKey]uint64
	// maxCapacity limits the number of entries (0 = unlimited)
	maxCapacity int
	// hits counts successful lookups
	hits int
	// misses counts failed lookups
	misses int
}

// NewNodeCache creates an empty cache.
// maxCapacity of 0 means unlimited capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the node count stored for hash at depth.
func (c *NodeCache) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := c.entries[cacheKey{hash: hash, depth: depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Store records the node count for hash at depth. Once the cache is full,
// new entries are dropped.
func (c *NodeCache) Store(hash uint64, depth int, nodes uint64) {
	key := cacheKey{hash: hash, depth: depth}
	if _, exists := c.entries[key]; !exists && c.IsFull() {
		return
	}
	c.entries[key] = nodes
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *NodeCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Len returns the number of stored entries.
func (c *NodeCache) Len() int {
	return len(c.entries)
}

// Hits returns the number of successful lookups.
func (c *NodeCache) Hits() int {
	return c.hits
}

// Misses returns the number of failed lookups.
func (c *NodeCache) Misses() int {
	return c.misses
}

// Reset clears all entries and counters.
func (c *NodeCache) Reset() {
	c.entries = make(map[cacheKey]uint64)
	c.hits = 0
	c.misses = 0
}
