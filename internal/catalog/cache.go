package catalog

import "sync"

// Cache keeps the last-seen summary for every product rendered during this
// session, so add-to-cart shortcuts never need a second fetch. Entries are
// overwritten on every fresh query and never evicted.
type Cache struct {
	mu       sync.RWMutex
	products map[string]ProductSummary
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{products: make(map[string]ProductSummary)}
}

// Put records every item in the batch, overwriting prior entries. Items
// without an identifier are skipped.
func (c *Cache) Put(items []ProductSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		key := item.Key()
		if key == "" {
			continue
		}
		c.products[key] = item
	}
}

// Get returns the cached summary for a product id.
func (c *Cache) Get(id string) (ProductSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.products[id]
	return item, ok
}

// Len reports the number of cached products.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
