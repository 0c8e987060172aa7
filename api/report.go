// Package api defines the JSON reports printed by the CLI and returned by the
// MCP server.
package api

import (
	"github.com/agentic-research/xdgicon/internal/graph"
	"github.com/agentic-research/xdgicon/internal/icon"
	"github.com/agentic-research/xdgicon/internal/theme"
)

// Theme describes a resolved icon theme.
type Theme struct {
	// Name is the internal name, the directory the theme lives in.
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Comment     string `json:"comment,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
	Example     string `json:"example,omitempty"`
	// IndexLocation is the index.theme the theme was read from.
	IndexLocation string   `json:"index_location"`
	BaseDirs      []string `json:"base_dirs"`
	// Inherits are the parents as declared, including unknown ones.
	Inherits []string `json:"inherits,omitempty"`
	// Chain is the resolved lookup order after the theme itself.
	Chain       []string    `json:"chain"`
	Directories []Directory `json:"directories,omitempty"`
}

// Directory describes one directory of a theme.
type Directory struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`
	Scale     int    `json:"scale"`
	Type      string `json:"type"`
	MinSize   int    `json:"min_size"`
	MaxSize   int    `json:"max_size"`
	Threshold int    `json:"threshold"`
	Context   string `json:"context,omitempty"`
	Scaled    bool   `json:"scaled,omitempty"`
}

// Icon is the result of a lookup.
type Icon struct {
	Name  string `json:"name"`
	Theme string `json:"theme"`
	Size  int    `json:"size"`
	Scale int    `json:"scale"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
	Type  string `json:"type,omitempty"`
}

// NewTheme builds the report for t. Directories are only included when
// withDirs is set.
func NewTheme(t *graph.Theme, withDirs bool) Theme {
	idx := t.Info.Index
	r := Theme{
		Name:          t.Name(),
		DisplayName:   idx.Name,
		Comment:       idx.Comment,
		Hidden:        idx.Hidden,
		Example:       idx.Example,
		IndexLocation: t.Info.IndexLocation,
		BaseDirs:      t.Info.BaseDirs,
		Inherits:      idx.Inherits,
		Chain:         ChainNames(t),
	}
	if withDirs {
		r.Directories = make([]Directory, len(idx.Directories))
		for i := range idx.Directories {
			r.Directories[i] = NewDirectory(&idx.Directories[i])
		}
	}
	return r
}

// ChainNames lists the names of the themes t falls back to, in order.
func ChainNames(t *graph.Theme) []string {
	out := make([]string, len(t.InheritsFrom))
	for i, p := range t.InheritsFrom {
		out[i] = p.Name()
	}
	return out
}

func NewDirectory(d *theme.Directory) Directory {
	return Directory{
		Name:      d.Name,
		Size:      d.Size,
		Scale:     d.Scale,
		Type:      d.Type.String(),
		MinSize:   d.MinSize,
		MaxSize:   d.MaxSize,
		Threshold: d.Threshold,
		Context:   d.Context,
		Scaled:    d.Scaled,
	}
}

// NewIcon builds the report of a lookup of name in themeName.
func NewIcon(name, themeName string, size, scale int, f icon.File, found bool) Icon {
	r := Icon{Name: name, Theme: themeName, Size: size, Scale: scale, Found: found}
	if found {
		r.Path = f.Path()
		r.Type = f.Type().String()
	}
	return r
}
