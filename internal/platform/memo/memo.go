package memo

import "sync"

type entry struct {
	fingerprint string
	value       any
}

// Cache memoizes derived values per key. Each key holds a single entry
// tagged with the fingerprint of the inputs it was computed from; the
// entry is recomputed only when the fingerprint changes. Keys are
// independent, so bumping one key's inputs never evicts another key.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Get returns the cached value for key if it was computed from the same
// fingerprint, otherwise runs compute and stores the result.
func (c *Cache) Get(key, fingerprint string, compute func() any) any {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && e.fingerprint == fingerprint {
		return e.value
	}

	value := compute()

	c.mu.Lock()
	c.entries[key] = entry{fingerprint: fingerprint, value: value}
	c.mu.Unlock()

	return value
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache) InvalidatePrefix(prefix string) {
	if prefix == "" {
		return
	}

	c.mu.Lock()
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Len reports the number of cached entries, mostly for tests.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
