package graph

import (
	"slices"

	"github.com/RoaringBitmap/roaring"
	billy "github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/agentic-research/xdgicon/internal/theme"
)

// Fallback is the theme every other theme implicitly inherits from last.
const Fallback = "hicolor"

// Source supplies theme descriptors by internal name.
type Source interface {
	// LoadTheme returns the descriptor of a theme. Any error means the name
	// cannot take part in resolution.
	LoadTheme(name string) (*theme.Info, error)
	// Filesystem is where the theme's icons are looked up.
	Filesystem() billy.Filesystem
}

// Catalog is a Source that can also enumerate the themes it may hold.
type Catalog interface {
	Source
	// ThemeNames lists candidate names. A candidate need not be a valid theme.
	ThemeNames() []string
}

// Resolver turns theme names into linked Theme nodes.
type Resolver struct {
	Source Source
	Logger zerolog.Logger
}

// NewResolver creates a Resolver that does not log.
func NewResolver(src Source) *Resolver {
	return &Resolver{Source: src, Logger: zerolog.Nop()}
}

// Resolve is shorthand for NewResolver(src).Resolve(names...).
func Resolve(src Source, names ...string) map[string]*Theme {
	return NewResolver(src).Resolve(names...)
}

// ResolveAll resolves every candidate theme of c.
func ResolveAll(c Catalog) map[string]*Theme {
	return NewResolver(c).Resolve(c.ThemeNames()...)
}

// Resolve loads the requested themes, every theme they transitively inherit
// from, and the fallback theme, then links them into nodes.
//
// Names that cannot be loaded are left out of the result. The result is never
// nil. Every node's InheritsFrom is free of duplicates, never contains the node
// itself, and ends with the fallback theme when it is installed.
func (r *Resolver) Resolve(names ...string) map[string]*Theme {
	res := r.collect(names)

	res.chains = make([][]int, len(res.names))
	for i := range res.names {
		res.chains[i] = res.chain(i)
	}

	res.nodes = make([]*Theme, len(res.names))
	res.state = make([]buildState, len(res.names))
	for i := range res.names {
		chain := res.chains[i]
		for j := len(chain) - 1; j >= 0; j-- {
			if res.state[chain[j]] == unbuilt {
				res.construct(chain[j])
			}
		}
	}

	out := make(map[string]*Theme, len(res.names))
	for i, name := range res.names {
		out[name] = res.nodes[i]
	}
	return out
}

type buildState uint8

const (
	unbuilt buildState = iota
	building
	built
)

// resolution is the working state of one Resolve call. Themes are addressed by
// their index in names.
type resolution struct {
	log      zerolog.Logger
	fsys     billy.Filesystem
	names    []string
	infos    []*theme.Info
	index    map[string]int
	fallback int // -1 when the fallback theme is not installed

	chains [][]int
	nodes  []*Theme
	state  []buildState
}

// collect loads descriptors depth first from an explicit stack, visiting each
// name once. Names that fail to load are dropped.
func (r *Resolver) collect(requested []string) *resolution {
	res := &resolution{
		log:      r.Logger,
		fsys:     r.Source.Filesystem(),
		index:    make(map[string]int),
		fallback: -1,
	}
	visited := make(map[string]struct{})

	visit := func(start string) {
		stack := []string{start}
		for len(stack) > 0 {
			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := visited[name]; ok {
				continue
			}
			visited[name] = struct{}{}

			info, err := r.Source.LoadTheme(name)
			if err != nil {
				r.Logger.Debug().Err(err).Str("theme", name).Msg("skipping theme candidate")
				continue
			}

			res.index[name] = len(res.names)
			res.names = append(res.names, name)
			res.infos = append(res.infos, info)

			// Push in reverse so the first declared parent is visited first.
			parents := info.Index.Inherits
			for i := len(parents) - 1; i >= 0; i-- {
				if _, ok := visited[parents[i]]; !ok {
					stack = append(stack, parents[i])
				}
			}
		}
	}

	for _, name := range requested {
		visit(name)
	}
	visit(Fallback)

	if i, ok := res.index[Fallback]; ok {
		res.fallback = i
	}
	return res
}

func (res *resolution) parents(i int) []int {
	declared := res.infos[i].Index.Inherits
	out := make([]int, 0, len(declared))
	for _, name := range declared {
		if p, ok := res.index[name]; ok {
			out = append(out, p)
		}
	}
	return out
}

// chain computes the lookup order for theme self, breadth first. A parent that
// is already in the chain is moved to the end, so a theme shared by several
// ancestors comes after the last of them. The fallback theme always goes last.
func (res *resolution) chain(self int) []int {
	chain := []int{self}
	in := roaring.BitmapOf(uint32(self))

	// Inheritance cycles can move the same themes back and forth forever;
	// each theme may only be moved this many times.
	budget := len(res.names)
	moves := make(map[int]int)

	for cursor := 0; cursor < len(chain); cursor++ {
		node := chain[cursor]
		for _, p := range res.parents(node) {
			if p == self || p == node {
				continue
			}
			if in.Contains(uint32(p)) {
				if moves[p] >= budget {
					continue
				}
				moves[p]++
				pos := slices.Index(chain, p)
				chain = slices.Delete(chain, pos, pos+1)
				if pos < cursor {
					cursor--
				}
			} else {
				in.Add(uint32(p))
			}
			chain = append(chain, p)
		}
	}

	if fb := res.fallback; fb >= 0 && fb != self {
		if pos := slices.Index(chain, fb); pos >= 0 {
			chain = slices.Delete(chain, pos, pos+1)
		}
		chain = append(chain, fb)
	}
	return chain
}

// construct builds the node for root once every theme in its chain has a node.
// A chain member that is still being built depends on root itself; linking it
// would create a cycle, so it is left out.
func (res *resolution) construct(root int) {
	type frame struct {
		idx  int
		next int
	}
	res.state[root] = building
	stack := []frame{{idx: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		deps := res.chains[top.idx][1:]

		if top.next < len(deps) {
			d := deps[top.next]
			top.next++
			if res.state[d] == unbuilt {
				res.state[d] = building
				stack = append(stack, frame{idx: d})
			}
			continue
		}

		inherits := make([]*Theme, 0, len(deps))
		for _, d := range deps {
			if res.nodes[d] == nil {
				res.log.Warn().
					Str("theme", res.names[top.idx]).
					Str("parent", res.names[d]).
					Msg("inheritance cycle, dropping parent")
				continue
			}
			inherits = append(inherits, res.nodes[d])
		}

		res.nodes[top.idx] = &Theme{
			Info:         res.infos[top.idx],
			InheritsFrom: inherits,
			fsys:         res.fsys,
		}
		res.state[top.idx] = built
		stack = stack[:len(stack)-1]
	}
}
