// Package walk: arc model implementation.
package walk

import (
	"errors"

	"github.com/koragendum/conlog/core"
)

// Sentinel errors for model construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrUnvalidatedGraph is returned when the graph has not been validated.
	ErrUnvalidatedGraph = errors.New("walk: graph not validated")
)

// Arc is a directed traversal of one undirected edge.
type Arc struct {
	From, To int
}

// Succ is one legal continuation from an arc: the successor arc id and
// any NoOp vertices elided between the two (nil when none).
type Succ struct {
	Arc int
	Via []int
}

// Option configures model construction.
type Option func(*options)

type options struct {
	elide bool
}

// WithNoOpElision collapses transitions through arcs joining two NoOp
// vertices, forwarding them to their successors with the skipped
// vertices recorded.
func WithNoOpElision() Option {
	return func(o *options) { o.elide = true }
}

// Model is the precomputed arc graph of legal walk steps.
type Model struct {
	g    *core.Graph
	arcs []Arc
	ids  map[Arc]int
	succ [][]Succ
	out  [][]int // node id → arc ids leaving it, adjacency order
}

// New builds the arc model for a validated graph.
// Complexity: O(V + E + Σ deg²).
func New(g *core.Graph, opts ...Option) (*Model, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.InitialID() < 0 || g.TerminalID() < 0 {
		return nil, ErrUnvalidatedGraph
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{g: g, ids: make(map[Arc]int)}

	// 1. Enumerate arcs: node order, then adjacency order.
	n := g.NodeCount()
	m.out = make([][]int, n)
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			a := Arc{From: u, To: v}
			m.ids[a] = len(m.arcs)
			m.out[u] = append(m.out[u], len(m.arcs))
			m.arcs = append(m.arcs, a)
		}
	}

	// 2. Precompute successor lists, eliding none–none arcs if asked.
	m.succ = make([][]Succ, len(m.arcs))
	for id, a := range m.arcs {
		for _, w := range g.Neighbors(a.To) {
			if w == a.From {
				continue // no immediate U-turn
			}
			next := Arc{From: a.To, To: w}
			if o.elide && m.isNoOp(a.To) && m.isNoOp(w) {
				// Forward through the none–none arc: its own successors,
				// with the skipped junction recorded.
				for _, x := range g.Neighbors(w) {
					if x == a.To {
						continue
					}
					m.succ[id] = append(m.succ[id], Succ{Arc: m.ids[Arc{From: w, To: x}], Via: []int{w}})
				}
				continue
			}
			m.succ[id] = append(m.succ[id], Succ{Arc: m.ids[next]})
		}
	}

	return m, nil
}

func (m *Model) isNoOp(id int) bool {
	_, ok := m.g.Node(id).Op.(core.NoOp)
	return ok
}

// ArcCount returns the number of directed arcs.
func (m *Model) ArcCount() int { return len(m.arcs) }

// Arc returns the arc with the given id.
func (m *Model) Arc(id int) Arc { return m.arcs[id] }

// ID resolves an arc to its id.
func (m *Model) ID(a Arc) (int, bool) {
	id, ok := m.ids[a]
	return id, ok
}

// Successors returns the legal continuations of an arc, in adjacency
// order. The slice is shared; callers must not mutate it.
func (m *Model) Successors(id int) []Succ { return m.succ[id] }

// ArcsOut returns the ids of the arcs leaving a vertex, in adjacency
// order. The slice is shared; callers must not mutate it.
func (m *Model) ArcsOut(node int) []int { return m.out[node] }
