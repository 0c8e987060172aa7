package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	billy "github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agentic-research/xdgicon/internal/cache"
	"github.com/agentic-research/xdgicon/internal/graph"
	"github.com/agentic-research/xdgicon/internal/icon"
	"github.com/agentic-research/xdgicon/internal/icons"
	"github.com/agentic-research/xdgicon/internal/theme"
)

// scanWorkers bounds how many search directories are read at once.
const scanWorkers = 8

// Locations are the theme directories and standalone icons found in the
// search directories. A theme directory is only a candidate until its
// index.theme has been read.
type Locations struct {
	Logger zerolog.Logger
	// Standalone icons lie directly in a search directory, in search order.
	Standalone []icon.File
	// ThemeDirs maps a theme name to every directory of that name, in search
	// order.
	ThemeDirs map[string][]string

	fsys       billy.Filesystem
	standalone *cache.StandaloneCache
}

var _ graph.Catalog = (*Locations)(nil)

// NewLocations wraps already known locations.
func NewLocations(fsys billy.Filesystem, standalone []icon.File, themeDirs map[string][]string) *Locations {
	if themeDirs == nil {
		themeDirs = make(map[string][]string)
	}
	l := &Locations{
		Logger:     zerolog.Nop(),
		Standalone: standalone,
		ThemeDirs:  themeDirs,
		fsys:       fsys,
	}
	l.standalone = cache.NewStandaloneCache(func() []icon.File { return l.Standalone })
	return l
}

type dirListing struct {
	themes []string
	files  []icon.File
}

// Scan reads every search directory. Directories are read concurrently but
// the result is merged in search order. A directory that cannot be read is
// skipped and logged at debug level with the logger attached to ctx; only
// cancellation of ctx fails the scan.
func Scan(ctx context.Context, fsys billy.Filesystem, dirs []string) (*Locations, error) {
	log := zerolog.Ctx(ctx)
	listings := make([]dirListing, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scanWorkers)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			listing, err := scanDir(fsys, dir)
			if err != nil {
				log.Debug().Err(err).Str("dir", dir).Msg("skipping search directory")
				return nil
			}
			listings[i] = listing
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var standalone []icon.File
	themeDirs := make(map[string][]string)
	for i, l := range listings {
		standalone = append(standalone, l.files...)
		for _, name := range l.themes {
			themeDirs[name] = append(themeDirs[name], filepath.Join(dirs[i], name))
		}
	}
	loc := NewLocations(fsys, standalone, themeDirs)
	loc.Logger = *log
	return loc, nil
}

// scanDir sorts the entries of dir into theme directories and icons.
// Symlinks without an extension are taken to point at a theme directory.
func scanDir(fsys billy.Filesystem, dir string) (dirListing, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return dirListing{}, err
	}
	var out dirListing
	for _, e := range entries {
		isLink := e.Mode()&os.ModeSymlink != 0
		if e.IsDir() || (isLink && filepath.Ext(e.Name()) == "") {
			out.themes = append(out.themes, e.Name())
			continue
		}
		if f, ok := icon.FromPath(filepath.Join(dir, e.Name())); ok {
			out.files = append(out.files, f)
		}
	}
	return out, nil
}

// Filesystem implements graph.Source.
func (l *Locations) Filesystem() billy.Filesystem {
	return l.fsys
}

// LoadTheme reads the theme called name from the first index.theme among its
// directories.
func (l *Locations) LoadTheme(name string) (*theme.Info, error) {
	dirs, ok := l.ThemeDirs[name]
	if !ok {
		return nil, fmt.Errorf("theme %q: %w", name, theme.ErrNotAnIconTheme)
	}
	return theme.LoadInfo(l.fsys, name, dirs)
}

// ThemeNames returns every candidate theme name, sorted.
func (l *Locations) ThemeNames() []string {
	names := make([]string, 0, len(l.ThemeDirs))
	for name := range l.ThemeDirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StandaloneIcon returns the first standalone icon called name.
func (l *Locations) StandaloneIcon(name string) (icon.File, bool) {
	return l.standalone.Find(name)
}

func (l *Locations) resolver() *graph.Resolver {
	r := graph.NewResolver(l)
	r.Logger = l.Logger
	return r
}

// Resolve resolves only the named themes, their ancestors and the fallback
// theme.
func (l *Locations) Resolve(names ...string) map[string]*graph.Theme {
	return l.resolver().Resolve(names...)
}

// ResolveAll resolves every candidate theme.
func (l *Locations) ResolveAll() map[string]*graph.Theme {
	return l.resolver().Resolve(l.ThemeNames()...)
}

// Icons resolves every candidate theme and indexes the standalone icons.
func (l *Locations) Icons() *icons.Icons {
	return icons.New(l.ResolveAll(), l.standalone.Map())
}
