package icons_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/xdgicon/internal/graph"
	"github.com/agentic-research/xdgicon/internal/icon"
	"github.com/agentic-research/xdgicon/internal/icons"
	"github.com/agentic-research/xdgicon/internal/testutil"
)

func fixture(t *testing.T) (*icons.Icons, map[string]string) {
	tr := testutil.NewTree()
	paths := make(map[string]string)

	app := tr.Theme(t, "Apps", testutil.Index("Apps", []string{"hicolor"}, testutil.Fixed("16", 16)))
	hicolor := tr.Theme(t, "hicolor", testutil.Index("hicolor", nil, testutil.Fixed("16", 16)))

	paths["Apps/editor"] = tr.Icon(t, app, "16", "editor.png")
	paths["hicolor/editor"] = tr.Icon(t, hicolor, "16", "editor.svg")
	paths["hicolor/terminal"] = tr.Icon(t, hicolor, "16", "terminal.png")

	const pixmaps = "/usr/share/pixmaps"
	paths["pixmaps/legacy"] = tr.Icon(t, pixmaps, "", "legacy.xpm")
	paths["pixmaps/editor"] = tr.Icon(t, pixmaps, "", "editor.png")

	standalone := make(map[string]icon.File)
	for _, key := range []string{"pixmaps/legacy", "pixmaps/editor"} {
		f, ok := icon.FromPath(paths[key])
		require.True(t, ok)
		standalone[f.Name()] = f
	}

	return icons.New(graph.Resolve(tr, "Apps"), standalone), paths
}

func TestFindIcon(t *testing.T) {
	ic, paths := fixture(t)

	t.Run("theme", func(t *testing.T) {
		f, ok := ic.FindIcon("editor", 16, 1, "Apps")
		require.True(t, ok)
		assert.Equal(t, paths["Apps/editor"], f.Path())
	})

	t.Run("ancestor", func(t *testing.T) {
		f, ok := ic.FindIcon("terminal", 16, 1, "Apps")
		require.True(t, ok)
		assert.Equal(t, paths["hicolor/terminal"], f.Path())
	})

	t.Run("unknown theme falls back", func(t *testing.T) {
		f, ok := ic.FindIcon("editor", 16, 1, "NoSuchTheme")
		require.True(t, ok)
		assert.Equal(t, paths["hicolor/editor"], f.Path())
	})

	t.Run("standalone", func(t *testing.T) {
		f, ok := ic.FindIcon("legacy", 16, 1, "Apps")
		require.True(t, ok)
		assert.Equal(t, paths["pixmaps/legacy"], f.Path())
		assert.Equal(t, icon.XPM, f.Type())
	})

	t.Run("themes win over standalone", func(t *testing.T) {
		f, ok := ic.FindIcon("editor", 16, 1, "hicolor")
		require.True(t, ok)
		assert.Equal(t, paths["hicolor/editor"], f.Path())
	})

	t.Run("empty name", func(t *testing.T) {
		_, ok := ic.FindIcon("", 16, 1, "Apps")
		assert.False(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := ic.FindIcon("nothing", 16, 1, "Apps")
		assert.False(t, ok)
	})
}

func TestFindDefaultIcon(t *testing.T) {
	ic, paths := fixture(t)

	f, ok := ic.FindDefaultIcon("editor", 16, 1)
	require.True(t, ok)
	assert.Equal(t, paths["hicolor/editor"], f.Path())
}

func TestThemeNames(t *testing.T) {
	ic, _ := fixture(t)
	assert.Equal(t, []string{"Apps", "hicolor"}, ic.ThemeNames())

	th, ok := ic.Theme("Apps")
	require.True(t, ok)
	assert.Equal(t, "Apps", th.Name())

	_, ok = ic.Theme("Missing")
	assert.False(t, ok)
}

func TestNew_NilMaps(t *testing.T) {
	ic := icons.New(nil, nil)
	assert.Empty(t, ic.ThemeNames())

	_, ok := ic.FindIcon("x", 16, 1, "hicolor")
	assert.False(t, ok)
}

func TestFindIcon_NoFallbackTheme(t *testing.T) {
	tr := testutil.NewTree()
	app := tr.Theme(t, "Apps", testutil.Index("Apps", nil, testutil.Fixed("16", 16)))
	tr.Icon(t, app, "16", "editor.png")
	loose, ok := icon.FromPath(tr.Icon(t, "/usr/share/pixmaps", "", "legacy.png"))
	require.True(t, ok)

	ic := icons.New(graph.Resolve(tr, "Apps"), map[string]icon.File{"legacy": loose})
	_, ok = ic.Theme(graph.Fallback)
	require.False(t, ok)

	_, ok = ic.FindIcon("legacy", 16, 1, "NoSuchTheme")
	assert.False(t, ok, "no theme to search means no standalone fallback either")

	f, ok := ic.FindIcon("legacy", 16, 1, "Apps")
	require.True(t, ok)
	assert.Equal(t, loose.Path(), f.Path())
}

func TestFindIcon_RejectsPaths(t *testing.T) {
	ic, _ := fixture(t)

	for _, name := range []string{"../hicolor/16/editor", "16/editor", "/usr/share/pixmaps/legacy"} {
		_, ok := ic.FindIcon(name, 16, 1, "Apps")
		assert.False(t, ok, name)
	}
}
