// Package search finds icon themes and standalone icons in a list of base
// directories and resolves them into icons.Icons.
//
// A search runs in stages. Configured accepts directories, Search moves to
// Located, and Icons moves to Resolved. Calling a method in the wrong stage
// fails with ErrWrongStage.
package search

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	billy "github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/agentic-research/xdgicon/internal/icons"
)

// PixmapsDir holds legacy standalone icons.
const PixmapsDir = "/usr/share/pixmaps"

// ErrWrongStage is returned when a method is called out of order.
var ErrWrongStage = errors.New("search: wrong stage")

// Stage is the progress of an IconSearch.
type Stage int

const (
	Configured Stage = iota
	Located
	Resolved
)

func (s Stage) String() string {
	switch s {
	case Configured:
		return "configured"
	case Located:
		return "located"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// IconSearch drives a search through its stages.
type IconSearch struct {
	Logger zerolog.Logger

	fsys      billy.Filesystem
	dirs      []string
	stage     Stage
	locations *Locations
	icons     *icons.Icons
}

// New creates a search over dirs, in priority order.
func New(fsys billy.Filesystem, dirs ...string) *IconSearch {
	return &IconSearch{
		Logger: zerolog.Nop(),
		fsys:   fsys,
		dirs:   append([]string(nil), dirs...),
	}
}

// DefaultDirs returns the standard search directories: $HOME/.icons,
// $XDG_DATA_HOME/icons, icons under each of $XDG_DATA_DIRS, and the pixmaps
// directory.
func DefaultDirs() []string {
	dirs := []string{
		filepath.Join(xdg.Home, ".icons"),
		filepath.Join(xdg.DataHome, "icons"),
	}
	for _, d := range xdg.DataDirs {
		dirs = append(dirs, filepath.Join(d, "icons"))
	}
	return append(dirs, PixmapsDir)
}

// Default creates a search over DefaultDirs.
func Default(fsys billy.Filesystem) *IconSearch {
	return New(fsys, DefaultDirs()...)
}

// Stage returns the current stage.
func (s *IconSearch) Stage() Stage {
	return s.stage
}

// Dirs returns the configured search directories.
func (s *IconSearch) Dirs() []string {
	return s.dirs
}

func (s *IconSearch) expect(want Stage, op string) error {
	if s.stage != want {
		return fmt.Errorf("%s in stage %s, want %s: %w", op, s.stage, want, ErrWrongStage)
	}
	return nil
}

// AddDirectories appends search directories. They have lower priority than
// the ones already configured.
func (s *IconSearch) AddDirectories(dirs ...string) error {
	if err := s.expect(Configured, "add directories"); err != nil {
		return err
	}
	s.dirs = append(s.dirs, dirs...)
	return nil
}

// Search scans the search directories for theme directories and standalone
// icons, and moves to Located.
func (s *IconSearch) Search(ctx context.Context) error {
	if err := s.expect(Configured, "search"); err != nil {
		return err
	}
	loc, err := Scan(s.Logger.WithContext(ctx), s.fsys, s.dirs)
	if err != nil {
		return err
	}
	s.Logger.Debug().
		Int("themes", len(loc.ThemeDirs)).
		Int("standalone", len(loc.Standalone)).
		Msg("icon locations found")

	s.locations = loc
	s.stage = Located
	return nil
}

// Locations returns what Search found. Only valid in Located.
func (s *IconSearch) Locations() (*Locations, error) {
	if err := s.expect(Located, "locations"); err != nil {
		return nil, err
	}
	return s.locations, nil
}

// Icons resolves every candidate theme and moves to Resolved. Once
// resolved, later calls return the same result.
func (s *IconSearch) Icons() (*icons.Icons, error) {
	if s.stage == Resolved {
		return s.icons, nil
	}
	if err := s.expect(Located, "icons"); err != nil {
		return nil, err
	}
	s.icons = s.locations.Icons()
	s.locations = nil
	s.stage = Resolved
	return s.icons, nil
}
