// Package theme parses icon theme descriptors (index.theme files) and the
// directory records they declare.
package theme

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	// IndexFile is the name of the file that describes a theme.
	IndexFile = "index.theme"

	headerSection = "Icon Theme"
)

var (
	ErrNotAnIconTheme       = errors.New("missing Icon Theme index or section")
	ErrMissingAttribute     = errors.New("missing required attribute")
	ErrInvalidDirectoryType = errors.New("invalid directory type")
	ErrInvalidNumber        = errors.New("invalid number")
)

// Index is the formal description of a theme, read from its index.theme.
type Index struct {
	// Name is the human readable name of the theme.
	Name string
	// Comment is optional in practice, although XDG marks it required.
	Comment string
	// Inherits lists parent theme names in declaration order. Names may refer
	// to themes that are not installed.
	Inherits []string
	// Directories holds the entries of Directories followed by ScaledDirectories,
	// for every listed name that has a section.
	Directories []Directory
	Hidden      bool
	// Example names an icon that represents the theme, if any.
	Example string
}

// ParseIndex parses the contents of an index.theme file.
func ParseIndex(data []byte) (*Index, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
		IgnoreContinuation:  true,
		KeyValueDelimiters:  "=",
		// Directory names may contain dots; keep sections independent.
		ChildSectionDelimiter: "\x1f",
	}, data)
	if err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	header, err := f.GetSection(headerSection)
	if err != nil {
		return nil, ErrNotAnIconTheme
	}

	name, err := required(header, "Name")
	if err != nil {
		return nil, err
	}
	dirNames, err := required(header, "Directories")
	if err != nil {
		return nil, err
	}

	idx := &Index{
		Name:     name,
		Comment:  optional(header, "Comment"),
		Inherits: splitList(optional(header, "Inherits")),
		Example:  optional(header, "Example"),
	}

	if v := optional(header, "Hidden"); v != "" {
		idx.Hidden, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse Hidden: %w", err)
		}
	}

	regular := splitList(dirNames)
	scaled := splitList(optional(header, "ScaledDirectories"))

	seen := make(map[string]bool, len(regular)+len(scaled))
	for _, dirName := range slices.Concat(regular, scaled) {
		if seen[dirName] {
			continue
		}
		seen[dirName] = true

		sec, err := f.GetSection(dirName)
		if err != nil {
			// Listed without a section: nothing describes it, skip.
			continue
		}
		dir, err := parseDirectory(sec)
		if err != nil {
			return nil, fmt.Errorf("directory %q: %w", dirName, err)
		}
		if slices.Contains(scaled, dirName) {
			dir.Scaled = true
		}
		idx.Directories = append(idx.Directories, dir)
	}

	return idx, nil
}

func parseDirectory(sec *ini.Section) (Directory, error) {
	sizeStr, err := required(sec, "Size")
	if err != nil {
		return Directory{}, err
	}
	size, err := parseNumber("Size", sizeStr)
	if err != nil {
		return Directory{}, err
	}

	dir := Directory{
		Name:      sec.Name(),
		Size:      size,
		Scale:     1,
		Type:      Threshold,
		MinSize:   size,
		MaxSize:   size,
		Threshold: 2,
		Context:   optional(sec, "Context"),
	}

	numbers := []struct {
		key string
		dst *int
	}{
		{"Scale", &dir.Scale},
		{"MinSize", &dir.MinSize},
		{"MaxSize", &dir.MaxSize},
		{"Threshold", &dir.Threshold},
	}
	for _, n := range numbers {
		v := optional(sec, n.key)
		if v == "" {
			continue
		}
		if *n.dst, err = parseNumber(n.key, v); err != nil {
			return Directory{}, err
		}
	}
	if dir.Scale < 1 {
		return Directory{}, fmt.Errorf("%w: Scale must be at least 1, got %d", ErrInvalidNumber, dir.Scale)
	}

	if v := optional(sec, "Type"); v != "" {
		if dir.Type, err = ParseDirectoryType(v); err != nil {
			return Directory{}, err
		}
	}
	dir.Scaled = dir.Scale != 1

	return dir, nil
}

func required(sec *ini.Section, key string) (string, error) {
	k, err := sec.GetKey(key)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMissingAttribute, key)
	}
	return k.String(), nil
}

func optional(sec *ini.Section, key string) string {
	k, err := sec.GetKey(key)
	if err != nil {
		return ""
	}
	return k.String()
}

func parseNumber(key, v string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, key, v)
	}
	return int(n), nil
}

// splitList splits a comma separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
