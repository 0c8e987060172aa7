package graph

import (
	"math"
	"path/filepath"

	"github.com/agentic-research/xdgicon/internal/icon"
)

// Candidate is a file for some icon name in one of a theme's directories.
type Candidate struct {
	// Dir indexes the theme's Directories.
	Dir  int
	File icon.File
}

// FindIcon looks up an icon in this theme, then in each theme of
// InheritsFrom in order. The first theme holding any file for the name wins,
// even when a later theme has a closer size.
func (t *Theme) FindIcon(name string, size, scale int) (icon.File, bool) {
	if f, ok := t.FindIconHere(name, size, scale); ok {
		return f, true
	}
	for _, parent := range t.InheritsFrom {
		if f, ok := parent.FindIconHere(name, size, scale); ok {
			return f, true
		}
	}
	return icon.File{}, false
}

// FindIconHere looks up an icon in this theme only.
//
// A directory that matches size and scale exactly is preferred; ties go to the
// first base directory, then the first directory in index order, then the
// first extension in canonical order. Without an exact match the file in the
// directory with the smallest size distance is returned, the first such
// directory winning ties.
func (t *Theme) FindIconHere(name string, size, scale int) (icon.File, bool) {
	dirs := t.Directories()

	for _, base := range t.Info.BaseDirs {
		for i := range dirs {
			if !dirs[i].Matches(size, scale) {
				continue
			}
			if f, ok := t.candidate(base, &dirs[i], name); ok {
				return f, true
			}
		}
	}

	minDist := math.MaxInt
	var best icon.File
	found := false

	for _, base := range t.Info.BaseDirs {
		for i := range dirs {
			dist := dirs[i].Distance(size, scale)
			if dist >= minDist {
				continue
			}
			if f, ok := t.candidate(base, &dirs[i], name); ok {
				minDist = dist
				best = f
				found = true
			}
		}
	}
	return best, found
}

// FindIconFiles returns every file for name in this theme's own directories,
// ordered by base directory, then directory, then extension. The order is the
// one FindIconHere searches in.
func (t *Theme) FindIconFiles(name string) []Candidate {
	dirs := t.Directories()
	var out []Candidate
	for _, base := range t.Info.BaseDirs {
		for i := range dirs {
			for _, ft := range icon.Types {
				p := filepath.Join(base, dirs[i].Name, name+"."+ft.Ext())
				if f, ok := t.lookup(p); ok {
					out = append(out, Candidate{Dir: i, File: f})
				}
			}
		}
	}
	return out
}

// SelectCandidate applies the FindIconHere rules to a precomputed candidate
// list, without touching the filesystem.
func (t *Theme) SelectCandidate(candidates []Candidate, size, scale int) (icon.File, bool) {
	dirs := t.Directories()

	for _, c := range candidates {
		if dirs[c.Dir].Matches(size, scale) {
			return c.File, true
		}
	}

	minDist := math.MaxInt
	var best icon.File
	found := false
	for _, c := range candidates {
		if dist := dirs[c.Dir].Distance(size, scale); dist < minDist {
			minDist = dist
			best = c.File
			found = true
		}
	}
	return best, found
}
