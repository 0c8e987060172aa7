package theme

import "fmt"

// DirectoryType decides which keys of a directory section are used for size matching.
type DirectoryType int

const (
	// Threshold directories hold icons usable within Threshold pixels of Size.
	// This is the default when a section has no Type key.
	Threshold DirectoryType = iota
	// Fixed directories hold icons of exactly Size pixels.
	Fixed
	// Scalable directories hold icons usable anywhere between MinSize and MaxSize.
	Scalable
)

func (t DirectoryType) String() string {
	switch t {
	case Fixed:
		return "Fixed"
	case Scalable:
		return "Scalable"
	case Threshold:
		return "Threshold"
	default:
		return fmt.Sprintf("DirectoryType(%d)", int(t))
	}
}

// ParseDirectoryType maps the value of a Type key to a DirectoryType.
func ParseDirectoryType(s string) (DirectoryType, error) {
	switch s {
	case "Fixed":
		return Fixed, nil
	case "Scalable":
		return Scalable, nil
	case "Threshold":
		return Threshold, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirectoryType, s)
	}
}

// Directory describes one subdirectory of a theme, as declared in its index.
// Sizes are unscaled pixels. MinSize and MaxSize default to Size when absent,
// whatever the Type.
type Directory struct {
	// Name is the theme-relative path of the directory, e.g. "48x48/apps".
	// The directory is not guaranteed to exist on disk.
	Name      string
	Size      int
	Scale     int
	Type      DirectoryType
	MinSize   int
	MaxSize   int
	Threshold int
	Context   string
	// Scaled is set for directories listed under ScaledDirectories or with a
	// scale other than 1.
	Scaled bool
}

// Matches reports whether icons in this directory can be used as-is for the
// requested size and scale. The scale must match exactly.
func (d *Directory) Matches(size, scale int) bool {
	if d.Scale != scale {
		return false
	}

	switch d.Type {
	case Fixed:
		return d.Size == size
	case Scalable:
		return d.MinSize <= size && size <= d.MaxSize
	case Threshold:
		return absDiff(d.Size, size) <= d.Threshold
	default:
		return false
	}
}

// Distance scores how far the icons in this directory are from the requested
// size, comparing scaled pixel sizes. Zero means the request is acceptable.
func (d *Directory) Distance(size, scale int) int {
	want := size * scale

	switch d.Type {
	case Threshold:
		lower := max(d.Size-d.Threshold, 0) * d.Scale
		upper := (d.Size + d.Threshold) * d.Scale
		switch {
		case want < lower:
			return absDiff(want, d.MinSize*d.Scale)
		case want > upper:
			return absDiff(want, d.MaxSize*d.Scale)
		default:
			return 0
		}
	default:
		return absDiff(d.Size*d.Scale, want)
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
