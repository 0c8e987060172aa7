// Package testutil builds in-memory icon theme trees for tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/xdgicon/internal/theme"
)

// DefaultRoot is the search directory themes are created in by Theme.
const DefaultRoot = "/usr/share/icons"

// Dir describes a directory section of a generated index.theme.
// Zero values are omitted from the section.
type Dir struct {
	Name      string
	Size      int
	Scale     int
	Type      string
	MinSize   int
	MaxSize   int
	Threshold int
}

// Fixed is a Fixed directory of the given size at scale 1.
func Fixed(name string, size int) Dir {
	return Dir{Name: name, Size: size, Type: "Fixed"}
}

// Index renders an index.theme.
func Index(name string, inherits []string, dirs ...Dir) string {
	var b strings.Builder
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.Name
	}

	fmt.Fprintf(&b, "[Icon Theme]\nName=%s\nComment=%s test theme\n", name, name)
	if len(inherits) > 0 {
		fmt.Fprintf(&b, "Inherits=%s\n", strings.Join(inherits, ","))
	}
	fmt.Fprintf(&b, "Directories=%s\n", strings.Join(names, ","))

	for _, d := range dirs {
		fmt.Fprintf(&b, "\n[%s]\nSize=%d\n", d.Name, d.Size)
		for _, kv := range []struct {
			key string
			val int
		}{{"Scale", d.Scale}, {"MinSize", d.MinSize}, {"MaxSize", d.MaxSize}, {"Threshold", d.Threshold}} {
			if kv.val != 0 {
				fmt.Fprintf(&b, "%s=%d\n", kv.key, kv.val)
			}
		}
		if d.Type != "" {
			fmt.Fprintf(&b, "Type=%s\n", d.Type)
		}
	}
	return b.String()
}

// Tree is an in-memory filesystem holding icon themes.
type Tree struct {
	FS   billy.Filesystem
	dirs map[string][]string
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{FS: memfs.New(), dirs: make(map[string][]string)}
}

// Base registers root/name as a base directory of theme name and creates it.
func (tr *Tree) Base(t testing.TB, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, tr.FS.MkdirAll(dir, 0o755))
	tr.dirs[name] = append(tr.dirs[name], dir)
	return dir
}

// Theme creates theme name under DefaultRoot with the given index contents.
func (tr *Tree) Theme(t testing.TB, name, index string) string {
	t.Helper()
	return tr.ThemeAt(t, DefaultRoot, name, index)
}

// ThemeAt creates theme name under root with the given index contents.
func (tr *Tree) ThemeAt(t testing.TB, root, name, index string) string {
	t.Helper()
	dir := tr.Base(t, root, name)
	tr.Write(t, filepath.Join(dir, theme.IndexFile), index)
	return dir
}

// Icon creates an empty icon file at base/dir/file and returns its path.
func (tr *Tree) Icon(t testing.TB, base, dir, file string) string {
	t.Helper()
	p := filepath.Join(base, dir, file)
	tr.Write(t, p, "")
	return p
}

// Write creates a file with the given contents, creating parents as needed.
func (tr *Tree) Write(t testing.TB, path, contents string) {
	t.Helper()
	require.NoError(t, tr.FS.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, util.WriteFile(tr.FS, path, []byte(contents), 0o644))
}

// LoadTheme implements graph.Source.
func (tr *Tree) LoadTheme(name string) (*theme.Info, error) {
	dirs, ok := tr.dirs[name]
	if !ok {
		return nil, fmt.Errorf("theme %q: %w", name, theme.ErrNotAnIconTheme)
	}
	return theme.LoadInfo(tr.FS, name, dirs)
}

// Filesystem implements graph.Source.
func (tr *Tree) Filesystem() billy.Filesystem {
	return tr.FS
}

// ThemeNames lists every registered theme name.
func (tr *Tree) ThemeNames() []string {
	names := make([]string, 0, len(tr.dirs))
	for name := range tr.dirs {
		names = append(names, name)
	}
	return names
}
