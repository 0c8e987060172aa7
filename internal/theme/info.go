package theme

import (
	"fmt"
	"io"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
)

// Info holds everything known about one theme before its parents are resolved.
type Info struct {
	// InternalName is the name of the directory the theme lives in. It differs
	// from Index.Name, which is meant for display.
	InternalName string
	// BaseDirs are all directories named InternalName across the search
	// directories, in search order. A theme may be split over several of them.
	BaseDirs []string
	// IndexLocation is the first index.theme found in BaseDirs.
	IndexLocation string
	Index         *Index
}

// LoadInfo reads the theme called name from the first index.theme found in
// dirs. It fails with ErrNotAnIconTheme when none of dirs holds an index.
func LoadInfo(fsys billy.Filesystem, name string, dirs []string) (*Info, error) {
	for _, dir := range dirs {
		loc := filepath.Join(dir, IndexFile)
		fi, err := fsys.Stat(loc)
		if err != nil || fi.IsDir() {
			continue
		}

		data, err := readFile(fsys, loc)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", loc, err)
		}
		idx, err := ParseIndex(data)
		if err != nil {
			return nil, fmt.Errorf("theme %q: %w", name, err)
		}

		return &Info{
			InternalName:  name,
			BaseDirs:      dirs,
			IndexLocation: loc,
			Index:         idx,
		}, nil
	}
	return nil, fmt.Errorf("theme %q: %w", name, ErrNotAnIconTheme)
}

func readFile(fsys billy.Filesystem, name string) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}
