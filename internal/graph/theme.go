// Package graph resolves icon themes into an inheritance graph and finds
// icons in it.
package graph

import (
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/xdgicon/internal/icon"
	"github.com/agentic-research/xdgicon/internal/theme"
)

// Theme is a resolved icon theme. Themes are shared between every theme that
// inherits from them and are never modified after resolution.
type Theme struct {
	Info *theme.Info
	// InheritsFrom is the full lookup order after this theme: every ancestor,
	// deduplicated, with the fallback theme last.
	InheritsFrom []*Theme

	fsys billy.Filesystem
}

// NewTheme creates a theme node directly, without resolving anything.
func NewTheme(fsys billy.Filesystem, info *theme.Info, inheritsFrom ...*Theme) *Theme {
	return &Theme{Info: info, InheritsFrom: inheritsFrom, fsys: fsys}
}

// Name returns the internal name of the theme.
func (t *Theme) Name() string {
	return t.Info.InternalName
}

// Directories returns the directories declared in the theme's index.
func (t *Theme) Directories() []theme.Directory {
	return t.Info.Index.Directories
}

// Filesystem returns the filesystem the theme's icons are read from.
func (t *Theme) Filesystem() billy.Filesystem {
	return t.fsys
}

// DirectoryFiles lists the icons found in one directory of a theme.
type DirectoryFiles struct {
	Directory *theme.Directory
	Files     []icon.File
}

// Files lists every icon file in each of the theme's own directories, across
// all of its base directories. Ancestors are not included.
func (t *Theme) Files() []DirectoryFiles {
	dirs := t.Directories()
	out := make([]DirectoryFiles, 0, len(dirs))
	for i := range dirs {
		df := DirectoryFiles{Directory: &dirs[i]}
		for _, base := range t.Info.BaseDirs {
			dir := filepath.Join(base, dirs[i].Name)
			entries, err := t.fsys.ReadDir(dir)
			if err != nil {
				continue
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if f, ok := icon.FromPath(filepath.Join(dir, e.Name())); ok {
					df.Files = append(df.Files, f)
				}
			}
		}
		out = append(out, df)
	}
	return out
}

// lookup returns the icon at path if a regular file exists there.
func (t *Theme) lookup(path string) (icon.File, bool) {
	fi, err := t.fsys.Stat(path)
	if err != nil || fi.IsDir() {
		return icon.File{}, false
	}
	return icon.FromPath(path)
}

// candidate returns the first file for name in dir under base, trying
// extensions in canonical order.
func (t *Theme) candidate(base string, dir *theme.Directory, name string) (icon.File, bool) {
	for _, ft := range icon.Types {
		p := filepath.Join(base, dir.Name, name+"."+ft.Ext())
		if f, ok := t.lookup(p); ok {
			return f, true
		}
	}
	return icon.File{}, false
}
