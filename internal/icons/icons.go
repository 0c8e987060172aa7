// Package icons is the entry point for icon lookups: every resolved theme plus
// the icons that live outside any theme.
package icons

import (
	"sort"

	"github.com/agentic-research/xdgicon/internal/graph"
	"github.com/agentic-research/xdgicon/internal/icon"
)

// Icons holds resolved themes by internal name and standalone icons by name.
type Icons struct {
	Themes     map[string]*graph.Theme
	Standalone map[string]icon.File
}

// New wraps resolved themes and standalone icons. Nil maps are replaced by
// empty ones.
func New(themes map[string]*graph.Theme, standalone map[string]icon.File) *Icons {
	if themes == nil {
		themes = make(map[string]*graph.Theme)
	}
	if standalone == nil {
		standalone = make(map[string]icon.File)
	}
	return &Icons{Themes: themes, Standalone: standalone}
}

// Theme returns the theme with the given internal name.
func (i *Icons) Theme(name string) (*graph.Theme, bool) {
	t, ok := i.Themes[name]
	return t, ok
}

// ThemeNames returns the internal names of all themes, sorted.
func (i *Icons) ThemeNames() []string {
	names := make([]string, 0, len(i.Themes))
	for name := range i.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindIcon looks up an icon in the named theme and its ancestors.
//
// An unknown theme is replaced by the fallback theme; if that is missing too
// nothing is found. When no theme holds the icon, a standalone icon with the
// same name is returned if there is one. Names that are empty or contain a
// path separator are never found.
func (i *Icons) FindIcon(name string, size, scale int, themeName string) (icon.File, bool) {
	if !icon.ValidName(name) {
		return icon.File{}, false
	}

	t, ok := i.Themes[themeName]
	if !ok {
		t, ok = i.Themes[graph.Fallback]
	}
	if !ok {
		return icon.File{}, false
	}
	if f, found := t.FindIcon(name, size, scale); found {
		return f, true
	}
	return i.FindStandaloneIcon(name)
}

// FindDefaultIcon is FindIcon in the fallback theme.
func (i *Icons) FindDefaultIcon(name string, size, scale int) (icon.File, bool) {
	return i.FindIcon(name, size, scale, graph.Fallback)
}

// FindStandaloneIcon returns the icon found directly in a search directory.
func (i *Icons) FindStandaloneIcon(name string) (icon.File, bool) {
	f, ok := i.Standalone[name]
	return f, ok
}
