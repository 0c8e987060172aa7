// Package icon describes a single icon file on disk.
package icon

import (
	"path/filepath"
	"strings"
)

// FileType is the image format of an icon, derived from its extension.
type FileType int

const (
	// PNG is a fixed-size raster icon.
	PNG FileType = iota
	// XPM is a legacy X PixMap raster icon.
	XPM
	// SVG is a vector icon that can be scaled to any size.
	SVG
)

// Types lists every file type in canonical lookup order.
var Types = [...]FileType{PNG, XPM, SVG}

// Ext returns the canonical lowercase extension, without a dot.
func (t FileType) Ext() string {
	switch t {
	case PNG:
		return "png"
	case XPM:
		return "xpm"
	case SVG:
		return "svg"
	default:
		return ""
	}
}

func (t FileType) String() string {
	return t.Ext()
}

// TypeFromPath detects the file type from the extension of path.
// Matching ignores case.
func TypeFromPath(path string) (FileType, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, t := range Types {
		if strings.EqualFold(ext, t.Ext()) {
			return t, true
		}
	}
	return 0, false
}

// File is the path to an icon along with its detected file type.
// The zero value is not a valid icon; use FromPath.
type File struct {
	path     string
	fileType FileType
}

// FromPath creates a File from a filesystem path. It returns false if the
// path has no file stem or its extension is not a known icon format.
func FromPath(path string) (File, bool) {
	if stem(path) == "" {
		return File{}, false
	}
	t, ok := TypeFromPath(path)
	if !ok {
		return File{}, false
	}
	return File{path: path, fileType: t}, true
}

// Path returns where the icon lives on disk.
func (f File) Path() string { return f.path }

// Type returns the icon's file type.
func (f File) Type() FileType { return f.fileType }

// Name returns the icon name, which is the file name without its extension.
func (f File) Name() string { return stem(f.path) }

func (f File) String() string { return f.path }

func stem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ValidName reports whether name can be looked up. Icon names are bare file
// stems, so empty names and names with a path separator are rejected.
func ValidName(name string) bool {
	return name != "" && !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator)
}
