// Package cache memoizes icon lookups. A cached lookup returns exactly what
// the uncached lookup on the same theme would.
//
// Caches are not safe for concurrent use.
package cache

import (
	"math"

	"github.com/agentic-research/xdgicon/internal/graph"
	"github.com/agentic-research/xdgicon/internal/icon"
	"github.com/agentic-research/xdgicon/internal/icons"
)

// ThemeCache remembers, per icon name, every file the theme itself holds for
// that name.
type ThemeCache struct {
	theme   *graph.Theme
	owner   *IconsCache
	entries map[string][]graph.Candidate
}

// NewThemeCache creates an empty cache for t. Ancestors of t are searched
// without caching; use IconsCache to share caches between themes.
func NewThemeCache(t *graph.Theme) *ThemeCache {
	return &ThemeCache{theme: t, entries: make(map[string][]graph.Candidate)}
}

// Theme returns the cached theme.
func (c *ThemeCache) Theme() *graph.Theme {
	return c.theme
}

// FindIcon is the cached form of graph.Theme.FindIcon.
func (c *ThemeCache) FindIcon(name string, size, scale int) (icon.File, bool) {
	if f, ok := c.FindIconHere(name, size, scale); ok {
		return f, true
	}
	for _, parent := range c.theme.InheritsFrom {
		if c.owner != nil {
			if pc, ok := c.owner.themes[parent.Name()]; ok && pc.theme == parent {
				if f, ok := pc.FindIconHere(name, size, scale); ok {
					return f, true
				}
				continue
			}
		}
		if f, ok := parent.FindIconHere(name, size, scale); ok {
			return f, true
		}
	}
	return icon.File{}, false
}

// FindIconHere is the cached form of graph.Theme.FindIconHere. The first
// query for a name lists all of its files in the theme; later queries for any
// size or scale are answered from that list.
func (c *ThemeCache) FindIconHere(name string, size, scale int) (icon.File, bool) {
	candidates, ok := c.entries[name]
	if !ok {
		candidates = c.theme.FindIconFiles(name)
		c.entries[name] = candidates
	}

	dirs := c.theme.Directories()
	for _, cand := range candidates {
		if dirs[cand.Dir].Matches(size, scale) {
			return cand.File, true
		}
	}

	minDist := math.MaxInt
	var best icon.File
	found := false
	for _, cand := range candidates {
		if dist := dirs[cand.Dir].Distance(size, scale); dist < minDist {
			minDist, best, found = dist, cand.File, true
		}
	}
	return best, found
}

// Cached reports whether name has an entry, including a negative one.
func (c *ThemeCache) Cached(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Len returns the number of cached names.
func (c *ThemeCache) Len() int {
	return len(c.entries)
}

// Clear drops every entry.
func (c *ThemeCache) Clear() {
	clear(c.entries)
}

// IconsCache is the cached form of icons.Icons. Each theme gets one
// ThemeCache, which is also used when the theme is searched as an ancestor.
type IconsCache struct {
	icons  *icons.Icons
	themes map[string]*ThemeCache
}

// NewIconsCache creates empty caches for every theme in ic.
func NewIconsCache(ic *icons.Icons) *IconsCache {
	c := &IconsCache{icons: ic, themes: make(map[string]*ThemeCache, len(ic.Themes))}
	for name, t := range ic.Themes {
		tc := NewThemeCache(t)
		tc.owner = c
		c.themes[name] = tc
	}
	return c
}

// Icons returns the wrapped Icons.
func (c *IconsCache) Icons() *icons.Icons {
	return c.icons
}

// ThemeCache returns the cache of the named theme.
func (c *IconsCache) ThemeCache(name string) (*ThemeCache, bool) {
	tc, ok := c.themes[name]
	return tc, ok
}

// FindIcon is the cached form of icons.Icons.FindIcon.
func (c *IconsCache) FindIcon(name string, size, scale int, themeName string) (icon.File, bool) {
	if !icon.ValidName(name) {
		return icon.File{}, false
	}

	tc, ok := c.themes[themeName]
	if !ok {
		tc, ok = c.themes[graph.Fallback]
	}
	if !ok {
		return icon.File{}, false
	}
	if f, found := tc.FindIcon(name, size, scale); found {
		return f, true
	}
	return c.FindStandaloneIcon(name)
}

// FindDefaultIcon is FindIcon in the fallback theme.
func (c *IconsCache) FindDefaultIcon(name string, size, scale int) (icon.File, bool) {
	return c.FindIcon(name, size, scale, graph.Fallback)
}

// FindStandaloneIcon looks up an icon that is not part of any theme.
func (c *IconsCache) FindStandaloneIcon(name string) (icon.File, bool) {
	return c.icons.FindStandaloneIcon(name)
}

// Clear empties every theme cache.
func (c *IconsCache) Clear() {
	for _, tc := range c.themes {
		tc.Clear()
	}
}
