package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/xdgicon/internal/graph"
	"github.com/agentic-research/xdgicon/internal/icon"
	"github.com/agentic-research/xdgicon/internal/testutil"
)

// gearFixture is a Child -> Parent -> hicolor chain.
type gearFixture struct {
	tr      *testutil.Tree
	themes  map[string]*graph.Theme
	child   string
	parent  string
	hicolor string
}

func newGearFixture(t *testing.T) *gearFixture {
	tr := testutil.NewTree()
	f := &gearFixture{tr: tr}

	childDir := tr.Theme(t, "Child", testutil.Index("Child", []string{"Parent"},
		testutil.Fixed("16x16/apps", 16)))
	parentDir := tr.Theme(t, "Parent", testutil.Index("Parent", nil,
		testutil.Fixed("48x48/apps", 48)))
	hicolorDir := tr.Theme(t, "hicolor", testutil.Index("hicolor", nil,
		testutil.Fixed("16x16/apps", 16),
		testutil.Fixed("48x48/apps", 48),
		testutil.Dir{Name: "scalable/apps", Size: 128, Type: "Scalable", MinSize: 8, MaxSize: 512}))

	f.child = tr.Icon(t, childDir, "16x16/apps", "gear.png")
	f.parent = tr.Icon(t, parentDir, "48x48/apps", "gear.png")
	tr.Icon(t, parentDir, "48x48/apps", "folder.png")
	f.hicolor = tr.Icon(t, hicolorDir, "scalable/apps", "firefox.svg")

	f.themes = graph.Resolve(tr, "Child")
	return f
}

func TestFindIcon_ExactMatchInTheme(t *testing.T) {
	f := newGearFixture(t)

	got, ok := f.themes["Child"].FindIcon("gear", 16, 1)
	require.True(t, ok)
	assert.Equal(t, f.child, got.Path())
	assert.Equal(t, icon.PNG, got.Type())
}

func TestFindIcon_EscalatesPerThemeLevel(t *testing.T) {
	f := newGearFixture(t)

	// Child has a 16px gear; even though Parent holds an exact 48px gear,
	// the first theme level with any candidate wins.
	got, ok := f.themes["Child"].FindIcon("gear", 48, 1)
	require.True(t, ok)
	assert.Equal(t, f.child, got.Path())

	// Parent only has the 48px variant.
	got, ok = f.themes["Parent"].FindIcon("gear", 16, 1)
	require.True(t, ok)
	assert.Equal(t, f.parent, got.Path())

	// folder only lives in Parent.
	got, ok = f.themes["Child"].FindIcon("folder", 16, 1)
	require.True(t, ok)
	assert.Equal(t, "folder", got.Name())

	// firefox only lives in the fallback theme.
	got, ok = f.themes["Child"].FindIcon("firefox", 48, 1)
	require.True(t, ok)
	assert.Equal(t, f.hicolor, got.Path())
	assert.Equal(t, icon.SVG, got.Type())
}

func TestFindIcon_Missing(t *testing.T) {
	f := newGearFixture(t)

	_, ok := f.themes["Child"].FindIcon("nonexistent", 16, 1)
	assert.False(t, ok)

	_, ok = f.themes["Child"].FindIconHere("folder", 48, 1)
	assert.False(t, ok, "FindIconHere must not look at ancestors")
}

func TestFindIconHere_TieBreaks(t *testing.T) {
	tr := testutil.NewTree()
	base := tr.Theme(t, "T", testutil.Index("T", nil,
		testutil.Dir{Name: "a", Size: 32, Threshold: 4},
		testutil.Dir{Name: "b", Size: 32, Type: "Fixed"},
		testutil.Dir{Name: "c", Size: 64, Type: "Fixed"},
		testutil.Dir{Name: "d", Size: 64, Type: "Fixed"},
	))
	tr.Icon(t, base, "a", "x.svg")
	tr.Icon(t, base, "a", "x.png")
	tr.Icon(t, base, "b", "x.png")
	tr.Icon(t, base, "c", "y.png")
	tr.Icon(t, base, "d", "y.png")
	tr.Icon(t, base, "d", "z.svg")
	tr.Icon(t, base, "c", "z.xpm")

	th := graph.Resolve(tr, "T")["T"]

	// Both a and b match exactly: first directory, then first extension.
	got, ok := th.FindIconHere("x", 32, 1)
	require.True(t, ok)
	assert.Equal(t, base+"/a/x.png", got.Path())

	// Neither c nor d match 100px; they are equally far, c is declared first.
	got, ok = th.FindIconHere("y", 100, 1)
	require.True(t, ok)
	assert.Equal(t, base+"/c/y.png", got.Path())

	got, ok = th.FindIconHere("z", 100, 1)
	require.True(t, ok)
	assert.Equal(t, base+"/c/z.xpm", got.Path())

	// The closest directory wins over an earlier, farther one.
	got, ok = th.FindIconHere("y", 60, 1)
	require.True(t, ok)
	assert.Equal(t, base+"/c/y.png", got.Path())
	got, ok = th.FindIconHere("x", 60, 1)
	require.True(t, ok)
	assert.Equal(t, base+"/a/x.png", got.Path())
}

func TestFindIconHere_ScaleGate(t *testing.T) {
	tr := testutil.NewTree()
	base := tr.Theme(t, "T", testutil.Index("T", nil,
		testutil.Dir{Name: "32", Size: 32, Type: "Fixed"},
		testutil.Dir{Name: "32@2", Size: 32, Scale: 2, Type: "Fixed"},
	))
	tr.Icon(t, base, "32", "app.png")
	tr.Icon(t, base, "32@2", "app.png")

	th := graph.Resolve(tr, "T")["T"]

	got, ok := th.FindIconHere("app", 32, 2)
	require.True(t, ok)
	assert.Equal(t, base+"/32@2/app.png", got.Path())

	got, ok = th.FindIconHere("app", 32, 1)
	require.True(t, ok)
	assert.Equal(t, base+"/32/app.png", got.Path())

	// 64px at scale 1 is nearest to 32@2 (64 scaled pixels).
	got, ok = th.FindIconHere("app", 64, 1)
	require.True(t, ok)
	assert.Equal(t, base+"/32@2/app.png", got.Path())
}

func TestFindIconHere_MultipleBaseDirs(t *testing.T) {
	tr := testutil.NewTree()
	index := testutil.Index("Split", nil, testutil.Fixed("16", 16), testutil.Fixed("48", 48))
	home := tr.ThemeAt(t, "/home/u/.icons", "Split", index)
	system := tr.Base(t, testutil.DefaultRoot, "Split")

	tr.Icon(t, system, "16", "a.png")
	tr.Icon(t, home, "48", "a.png")
	tr.Icon(t, system, "48", "b.png")

	th := graph.Resolve(tr, "Split")["Split"]
	assert.Equal(t, []string{home, system}, th.Info.BaseDirs)

	got, ok := th.FindIconHere("a", 16, 1)
	require.True(t, ok)
	assert.Equal(t, system+"/16/a.png", got.Path())

	got, ok = th.FindIconHere("b", 48, 1)
	require.True(t, ok)
	assert.Equal(t, system+"/48/b.png", got.Path())

	// Distance pass: base dirs are scanned in order, the first minimum wins.
	got, ok = th.FindIconHere("a", 40, 1)
	require.True(t, ok)
	assert.Equal(t, home+"/48/a.png", got.Path())
}

func TestFindIconHere_IgnoresDirectoriesNamedLikeIcons(t *testing.T) {
	tr := testutil.NewTree()
	base := tr.Theme(t, "T", testutil.Index("T", nil, testutil.Fixed("16", 16)))
	require.NoError(t, tr.FS.MkdirAll(base+"/16/trap.png", 0o755))

	th := graph.Resolve(tr, "T")["T"]
	_, ok := th.FindIconHere("trap", 16, 1)
	assert.False(t, ok)
}

func TestFindIconFiles_MatchesFindIconHere(t *testing.T) {
	tr := testutil.NewTree()
	base := tr.Theme(t, "T", testutil.Index("T", nil,
		testutil.Fixed("16", 16),
		testutil.Dir{Name: "32", Size: 32},
		testutil.Dir{Name: "scalable", Size: 64, Type: "Scalable", MinSize: 48, MaxSize: 256},
	))
	tr.Icon(t, base, "16", "doc.png")
	tr.Icon(t, base, "32", "doc.png")
	tr.Icon(t, base, "32", "doc.svg")
	tr.Icon(t, base, "scalable", "doc.svg")

	th := graph.Resolve(tr, "T")["T"]

	candidates := th.FindIconFiles("doc")
	require.Len(t, candidates, 4)
	assert.Equal(t, 0, candidates[0].Dir)
	assert.Equal(t, 1, candidates[1].Dir)
	assert.Equal(t, icon.PNG, candidates[1].File.Type())
	assert.Equal(t, icon.SVG, candidates[2].File.Type())
	assert.Equal(t, 2, candidates[3].Dir)

	for size := 1; size <= 300; size += 7 {
		for scale := 1; scale <= 2; scale++ {
			want, wantOK := th.FindIconHere("doc", size, scale)
			got, gotOK := th.SelectCandidate(candidates, size, scale)
			assert.Equal(t, wantOK, gotOK)
			assert.Equal(t, want, got, "size=%d scale=%d", size, scale)
		}
	}
}

func TestFiles(t *testing.T) {
	f := newGearFixture(t)
	f.tr.Write(t, testutil.DefaultRoot+"/Parent/48x48/apps/README", "not an icon")

	listing := f.themes["Parent"].Files()
	require.Len(t, listing, 1)
	assert.Equal(t, "48x48/apps", listing[0].Directory.Name)

	var got []string
	for _, file := range listing[0].Files {
		got = append(got, file.Name())
	}
	assert.ElementsMatch(t, []string{"gear", "folder"}, got)
}
