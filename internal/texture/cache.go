package texture

import "sync"

// Cache loads each texture file once and shares it between frames and
// render passes. It is safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	items  map[string]*cacheEntry
	filter Filter
}

type cacheEntry struct {
	tex *Texture
	err error
}

// NewCache creates an empty cache producing textures with filter.
func NewCache(filter Filter) *Cache {
	return &Cache{items: make(map[string]*cacheEntry), filter: filter}
}

// Get returns the texture at path, loading it on first use. Load failures
// are cached too.
func (c *Cache) Get(path string) (*Texture, error) {
	c.mu.RLock()
	if e, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return e.tex, e.err
	}
	c.mu.RUnlock()

	img, err := Load(path)
	e := &cacheEntry{err: err}
	if err == nil {
		e.tex = New(img, c.filter)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[path]; ok {
		return existing.tex, existing.err
	}
	c.items[path] = e
	return e.tex, e.err
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
