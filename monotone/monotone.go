// Package monotone: analyzer implementation.
package monotone

import (
	"errors"
	"math"

	"github.com/willf/bitset"

	"github.com/koragendum/conlog/core"
)

// Sentinel errors for analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("monotone: graph is nil")

	// ErrUnvalidatedGraph is returned when Analyze is handed a graph
	// whose Validate has not run (or did not succeed).
	ErrUnvalidatedGraph = errors.New("monotone: graph not validated")
)

// Interval is a closed per-variable value range; unbounded sides hold
// the signed-64-bit extremes.
type Interval struct {
	Lo, Hi int64
}

// Contains reports whether v lies inside the interval.
func (iv Interval) Contains(v int64) bool { return iv.Lo <= v && v <= iv.Hi }

// unbounded is the interval admitting every signed 64-bit value.
var unbounded = Interval{Lo: math.MinInt64, Hi: math.MaxInt64}

// Result holds the monotonicity facts and derived intervals for one
// graph. Variables are addressed by name or by the graph's slot order.
type Result struct {
	vars      []string
	nondec    *bitset.BitSet // by slot
	noninc    *bitset.BitSet // by slot
	intervals []Interval     // by slot
}

// Nondecreasing reports whether the named variable never decreases
// along any walk.
func (r *Result) Nondecreasing(name string) bool {
	return r.contains(r.nondec, name)
}

// Nonincreasing reports whether the named variable never increases
// along any walk.
func (r *Result) Nonincreasing(name string) bool {
	return r.contains(r.noninc, name)
}

func (r *Result) contains(set *bitset.BitSet, name string) bool {
	for i, v := range r.vars {
		if v == name {
			return set.Test(uint(i))
		}
	}

	return false
}

// NondecreasingVars lists the nondecreasing variables in slot order.
func (r *Result) NondecreasingVars() []string { return r.collect(r.nondec) }

// NonincreasingVars lists the nonincreasing variables in slot order.
func (r *Result) NonincreasingVars() []string { return r.collect(r.noninc) }

func (r *Result) collect(set *bitset.BitSet) []string {
	var out []string
	for i, v := range r.vars {
		if set.Test(uint(i)) {
			out = append(out, v)
		}
	}

	return out
}

// Interval returns the derived [lo, hi] range for the named variable.
func (r *Result) Interval(name string) (Interval, bool) {
	for i, v := range r.vars {
		if v == name {
			return r.intervals[i], true
		}
	}

	return Interval{}, false
}

// Intervals returns the derived ranges in slot order. The slice is
// shared; callers must not mutate it.
func (r *Result) Intervals() []Interval { return r.intervals }

// Seed returns the abstract initial bound of the named variable for
// partial evaluation: fixed variables are exact, free ones follow their
// monotonicity via FromStatus.
func (r *Result) Seed(g *core.Graph, name string) Bound {
	for _, fv := range g.InitialOp().Fixed {
		if fv.Name == name {
			return Exact(fv.Value)
		}
	}

	return FromStatus(r.Nondecreasing(name), r.Nonincreasing(name))
}

// Symbol ids within the auxiliary graph, for n variables:
//
//	slot i       → i        (the variable symbol v)
//	n + slot i   → v⁺
//	2n + slot i  → v⁻
//	3n           → ⊕
//	3n + 1       → ⊖
type symbolGraph struct {
	n   int
	adj [][]int
}

func newSymbolGraph(n int) *symbolGraph {
	return &symbolGraph{n: n, adj: make([][]int, 3*n+2)}
}

func (sg *symbolGraph) sym(i int) int { return i }
func (sg *symbolGraph) pos(i int) int { return sg.n + i }
func (sg *symbolGraph) neg(i int) int { return 2*sg.n + i }
func (sg *symbolGraph) plus() int     { return 3 * sg.n }
func (sg *symbolGraph) minus() int    { return 3*sg.n + 1 }
func (sg *symbolGraph) edge(u, v int) { sg.adj[u] = append(sg.adj[u], v) }

// increase records that the variable in slot i is modified by a
// constant positive quantity somewhere in the graph.
func (sg *symbolGraph) increase(i int) {
	sg.edge(sg.sym(i), sg.plus())
	sg.edge(sg.pos(i), sg.minus())
	sg.edge(sg.neg(i), sg.plus())
}

// decrease is the mirror image of increase.
func (sg *symbolGraph) decrease(i int) {
	sg.edge(sg.sym(i), sg.minus())
	sg.edge(sg.pos(i), sg.plus())
	sg.edge(sg.neg(i), sg.minus())
}

// reaches reports whether target is reachable from start, by iterative
// depth-first traversal with bitset visited marks.
func (sg *symbolGraph) reaches(start, target int) bool {
	visited := bitset.New(uint(len(sg.adj)))
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u == target {
			return true
		}
		if visited.Test(uint(u)) {
			continue
		}
		visited.Set(uint(u))
		for _, w := range sg.adj[u] {
			if !visited.Test(uint(w)) {
				stack = append(stack, w)
			}
		}
	}

	return false
}

// Analyze computes the monotonicity facts and derived intervals for a
// validated graph.
//
// Construction walks every node once, adding symbol edges per the
// operation's effect; classification then runs one reachability pass
// per variable. See the package documentation for the edge table.
func Analyze(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.InitialID() < 0 || g.TerminalID() < 0 {
		return nil, ErrUnvalidatedGraph
	}

	vars := g.Vars()
	n := len(vars)
	sg := newSymbolGraph(n)

	slotOf := func(name string) int {
		s, _ := g.Slot(name)
		return s
	}

	for id := 0; id < g.NodeCount(); id++ {
		switch op := g.Node(id).Op.(type) {
		case core.Add:
			switch {
			case op.Rhs.IsLit() && op.Rhs.Literal() > 0:
				sg.increase(slotOf(op.Lhs))
			case op.Rhs.IsLit() && op.Rhs.Literal() < 0:
				sg.decrease(slotOf(op.Lhs))
			case !op.Rhs.IsLit():
				sg.edge(sg.sym(slotOf(op.Lhs)), sg.pos(slotOf(op.Rhs.Name())))
			}
		case core.Sub:
			switch {
			case op.Rhs.IsLit() && op.Rhs.Literal() > 0:
				sg.decrease(slotOf(op.Lhs))
			case op.Rhs.IsLit() && op.Rhs.Literal() < 0:
				sg.increase(slotOf(op.Lhs))
			case !op.Rhs.IsLit():
				sg.edge(sg.sym(slotOf(op.Lhs)), sg.neg(slotOf(op.Rhs.Name())))
			}
		case core.CondInc:
			// A conditional increment fires only when its guard is
			// positive, so a literal guard ≤ 0 contributes nothing.
			if !op.Rhs.IsLit() || op.Rhs.Literal() > 0 {
				sg.increase(slotOf(op.Lhs))
			}
		case core.CondDec:
			if !op.Rhs.IsLit() || op.Rhs.Literal() > 0 {
				sg.decrease(slotOf(op.Lhs))
			}
		case core.Initial, core.Terminal, core.NoOp, core.IntegerPrint, core.UnicodePrint:
			// no variable is modified
		}
	}

	res := &Result{
		vars:      vars,
		nondec:    bitset.New(uint(n)),
		noninc:    bitset.New(uint(n)),
		intervals: make([]Interval, n),
	}
	for i := range vars {
		if !sg.reaches(sg.sym(i), sg.minus()) {
			res.nondec.Set(uint(i))
		}
		if !sg.reaches(sg.sym(i), sg.plus()) {
			res.noninc.Set(uint(i))
		}
	}

	// Derive intervals from monotonicity and free/fixed status.
	fixed := make(map[string]int64, len(g.InitialOp().Fixed))
	for _, fv := range g.InitialOp().Fixed {
		fixed[fv.Name] = fv.Value
	}
	for i, name := range vars {
		iv := unbounded
		c, isFixed := fixed[name]
		if res.nondec.Test(uint(i)) {
			if isFixed {
				iv.Lo = c
			} else {
				iv.Hi = 0
			}
		}
		if res.noninc.Test(uint(i)) {
			if isFixed {
				iv.Hi = c
			} else {
				iv.Lo = 0
			}
		}
		res.intervals[i] = iv
	}

	return res, nil
}
