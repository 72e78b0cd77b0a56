package assistant

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// NewsCache keeps one brief per language for the lifetime of a session.
// Entries are never invalidated, and concurrent first requests for the
// same language share one fetch.
type NewsCache struct {
	mu      sync.Mutex
	entries map[string]NewsResult
	group   singleflight.Group
}

// Get returns the cached brief for lang or fetches it.
func (c *NewsCache) Get(ctx context.Context, lang string, fetch func(context.Context, string) NewsResult) NewsResult {
	if r, ok := c.lookup(lang); ok {
		return r
	}
	v, _, _ := c.group.Do(lang, func() (any, error) {
		if r, ok := c.lookup(lang); ok {
			return r, nil
		}
		r := fetch(ctx, lang)
		c.mu.Lock()
		if c.entries == nil {
			c.entries = make(map[string]NewsResult)
		}
		c.entries[lang] = r
		c.mu.Unlock()
		return r, nil
	})
	return v.(NewsResult)
}

func (c *NewsCache) lookup(lang string) (NewsResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[lang]
	return r, ok
}
