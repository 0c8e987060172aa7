package cache

import (
	"sync"

	"github.com/agentic-research/xdgicon/internal/icon"
)

// StandaloneCache indexes icons found outside any theme by name. The index is
// built on first use. When several files share a name the first one listed
// wins.
type StandaloneCache struct {
	load   func() []icon.File
	once   sync.Once
	byName map[string]icon.File
}

// NewStandaloneCache creates a cache that calls load once, on first use.
func NewStandaloneCache(load func() []icon.File) *StandaloneCache {
	return &StandaloneCache{load: load}
}

func (c *StandaloneCache) build() {
	c.once.Do(func() {
		files := c.load()
		c.byName = make(map[string]icon.File, len(files))
		for _, f := range files {
			if _, dup := c.byName[f.Name()]; !dup {
				c.byName[f.Name()] = f
			}
		}
	})
}

// Find returns the standalone icon called name.
func (c *StandaloneCache) Find(name string) (icon.File, bool) {
	c.build()
	f, ok := c.byName[name]
	return f, ok
}

// Map returns the whole index. Callers must not modify it.
func (c *StandaloneCache) Map() map[string]icon.File {
	c.build()
	return c.byName
}
