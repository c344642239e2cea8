package cache

import (
	"sync"
	"sync/atomic"
)

// Cache is a generic thread-safe LRU cache with a hard capacity.
// When an insert exceeds the capacity, the least recently used entry is
// evicted.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	nodes    map[K]*lruNode[K, V]
	order    lruList[K, V]
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates a new cache holding at most capacity entries.
// A capacity of 0 or less means unlimited.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		nodes:    make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.nodes[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	c.hits.Add(1)
	c.order.moveToFront(node)
	return node.value, true
}

// Put stores a value in the cache, replacing any previous value for key.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.nodes[key]; ok {
		node.value = value
		c.order.moveToFront(node)
		return
	}

	node := &lruNode[K, V]{key: key, value: value}
	c.nodes[key] = node
	c.order.pushFront(node)

	for c.capacity > 0 && c.order.len > c.capacity {
		oldest := c.order.popBack()
		delete(c.nodes, oldest.key)
	}
}

// GetOrLoad returns the cached value for key, or calls load and caches its
// result. load runs without the cache lock held, so two goroutines missing
// the same key may both load it; the last result wins. Errors are returned
// as-is and never cached.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		var zero V
		return zero, err
	}

	c.Put(key, v)
	return v, nil
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.nodes)
}

// Clear removes all entries from the cache. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nodes = make(map[K]*lruNode[K, V])
	c.order = lruList[K, V]{}
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	n := len(c.nodes)
	c.mu.Unlock()

	return Stats{
		Len:      n,
		Capacity: c.capacity,
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int

	// Capacity is the configured maximum number of entries (0 = unlimited).
	Capacity int

	// Hits is the number of Get calls that found an entry.
	Hits uint64

	// Misses is the number of Get calls that did not.
	Misses uint64
}
