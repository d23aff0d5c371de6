// Package cache provides a thread-safe LRU cache for compiled golox programs.
//
// Scanning and parsing are deterministic, so the Program for a given source
// text and option set can be reused. The REPL uses this to avoid re-parsing
// lines that are entered repeatedly.
//
// # Example
//
//	c := cache.New(1024)
//	prog := c.GetOrCompile("1 + 2", func() *types.Program {
//	    return parser.Compile("1 + 2")
//	})
package cache

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/sandrolain/golox/pkg/types"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Cache is an LRU (Least Recently Used) cache of compiled programs keyed by
// source text. Once the capacity is reached, the least recently accessed
// entry is evicted.
//
// Safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.Mutex
	capacity int
	lru      *lru.Cache
	hits     uint64
	misses   uint64
}

// New creates a new LRU cache with the given capacity.
// capacity must be > 0; if <= 0, DefaultCapacity is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		lru:      lru.New(capacity),
	}
}

// Get retrieves a program from the cache and marks it most recently used.
func (c *Cache) Get(key string) (*types.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Get(key)
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return v.(*types.Program), true
}

// Set inserts or replaces a program in the cache.
// If at capacity, the least recently used entry is evicted first.
func (c *Cache) Set(key string, prog *types.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, prog)
}

// GetOrCompile returns the cached program for key, or calls compile to
// create it. Programs that produced diagnostics are returned but not
// cached.
func (c *Cache) GetOrCompile(key string, compile func() *types.Program) *types.Program {
	if prog, ok := c.Get(key); ok {
		return prog
	}
	prog := compile()
	if !prog.HadError() {
		c.Set(key, prog)
	}
	return prog
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats returns the number of lookups that hit and missed.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Invalidate removes a single entry from the cache.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Clear()
}
