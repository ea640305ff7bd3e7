package content

import (
	"sync"
	"time"

	"github.com/sandeshsubedi9/Sandeshblog/internal/logging"
	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

type cacheEntry struct {
	modTime time.Time
	post    *model.RenderedPost
}

// CachedRenderer memoizes rendered posts by slug. An entry is dropped as soon
// as the backing file's modification time changes. Safe for concurrent use.
type CachedRenderer struct {
	r   *Renderer
	log logging.Logger

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// compile-time check
var _ PostRenderer = (*CachedRenderer)(nil)

func NewCachedRenderer(r *Renderer, log logging.Logger) *CachedRenderer {
	return &CachedRenderer{
		r:       r,
		log:     logging.OrNoOp(log),
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachedRenderer) Render(slug string) (*model.RenderedPost, error) {
	f, err := c.r.Resolve(slug)
	if err != nil {
		c.Invalidate(slug)
		return nil, err
	}

	c.mu.RLock()
	e, ok := c.entries[slug]
	c.mu.RUnlock()
	if ok && e.modTime.Equal(f.ModTime) {
		c.log.Debug("cache hit", "slug", slug)
		return copyPost(e.post), nil
	}

	post, err := c.r.Render(slug)
	if err != nil {
		c.Invalidate(slug)
		return nil, err
	}

	c.mu.Lock()
	c.entries[slug] = cacheEntry{modTime: f.ModTime, post: post}
	c.mu.Unlock()
	c.log.Debug("cache miss", "slug", slug, "stale", ok)
	return copyPost(post), nil
}

// Invalidate drops the cached entry for slug.
func (c *CachedRenderer) Invalidate(slug string) {
	c.mu.Lock()
	delete(c.entries, slug)
	c.mu.Unlock()
}

// Len returns the number of cached posts.
func (c *CachedRenderer) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func copyPost(p *model.RenderedPost) *model.RenderedPost {
	out := *p
	out.Headings = append([]model.Heading(nil), p.Headings...)
	return &out
}
