package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/xdgicon/internal/graph"
	"github.com/agentic-research/xdgicon/internal/icon"
	"github.com/agentic-research/xdgicon/internal/testutil"
)

func TestNewTheme(t *testing.T) {
	tr := testutil.NewTree()
	tr.Theme(t, "hicolor", testutil.Index("hicolor", nil, testutil.Fixed("16", 16)))
	tr.Theme(t, "Child", testutil.Index("Child", []string{"Missing", "hicolor"},
		testutil.Fixed("16", 16),
		testutil.Dir{Name: "scalable", Size: 64, Type: "Scalable", MinSize: 8, MaxSize: 512},
	))

	th := graph.Resolve(tr, "Child")["Child"]

	r := NewTheme(th, false)
	assert.Equal(t, "Child", r.Name)
	assert.Equal(t, "Child", r.DisplayName)
	assert.Equal(t, []string{"Missing", "hicolor"}, r.Inherits)
	assert.Equal(t, []string{"hicolor"}, r.Chain)
	assert.Equal(t, testutil.DefaultRoot+"/Child/index.theme", r.IndexLocation)
	assert.Nil(t, r.Directories)

	r = NewTheme(th, true)
	require.Len(t, r.Directories, 2)
	assert.Equal(t, Directory{Name: "scalable", Size: 64, Scale: 1, Type: "Scalable", MinSize: 8, MaxSize: 512, Threshold: 2}, r.Directories[1])

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"chain":["hicolor"]`)
}

func TestNewIcon(t *testing.T) {
	f, ok := icon.FromPath("/usr/share/icons/hicolor/16/x.svg")
	require.True(t, ok)

	r := NewIcon("x", "hicolor", 16, 1, f, true)
	assert.Equal(t, "svg", r.Type)
	assert.Equal(t, f.Path(), r.Path)

	r = NewIcon("y", "hicolor", 16, 1, icon.File{}, false)
	assert.False(t, r.Found)
	assert.Empty(t, r.Path)
	assert.Empty(t, r.Type)
}
