// Package solver: the reverse breadth-first search engine.
package solver

import (
	"github.com/koragendum/conlog/core"
	"github.com/koragendum/conlog/eval"
	"github.com/koragendum/conlog/monotone"
	"github.com/koragendum/conlog/walk"
)

// state is one reverse frontier entry. Back-pointers are arena indices;
// the whole forest lives in a single growable arena owned by the engine
// and released as a unit when the search ends.
type state struct {
	arc    int         // arc id in the walk model; the state's node is Arc.To
	parent int         // arena index of the predecessor state, -1 for seeds
	via    []int       // NoOp vertices elided on the transition into this state
	values core.Values // variable values by slot; never mutated after creation
}

// engine bundles the immutable inputs and the mutable search arena.
type engine struct {
	g     *core.Graph
	model *walk.Model
	opts  Options

	intervals []monotone.Interval // by slot; nil when pruning is off
	fixed     []fixedSlot

	arena []state
	head  int // queue front: arena[head:] is the frontier
	res   Result
}

// fixedSlot is a fixed-variable prescription resolved to a slot.
type fixedSlot struct {
	slot  int
	value int64
}

// Solve runs the reverse-BFS search over g.
//
// The graph is validated first; invariant violations surface as core
// sentinel errors. Search outcomes (Unsatisfiable, BudgetExceeded,
// Canceled) are ordinary Result variants, not errors.
//
// Determinism: identical graphs and options yield identical Results.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	var modelOpts []walk.Option
	if o.Elide {
		modelOpts = append(modelOpts, walk.WithNoOpElision())
	}
	model, err := walk.New(g, modelOpts...)
	if err != nil {
		return nil, err
	}

	e := &engine{g: g, model: model, opts: o}

	if o.Prune {
		analysis, err := monotone.Analyze(g)
		if err != nil {
			return nil, err
		}
		e.intervals = analysis.Intervals()
		o.Logger.Debug().
			Strs("nondecreasing", analysis.NondecreasingVars()).
			Strs("nonincreasing", analysis.NonincreasingVars()).
			Msg("monotonicity analysis")
	}

	for _, fv := range g.InitialOp().Fixed {
		slot, _ := g.Slot(fv.Name)
		e.fixed = append(e.fixed, fixedSlot{slot: slot, value: fv.Value})
	}

	return e.run()
}

// run seeds the frontier and processes it to exhaustion or budget.
func (e *engine) run() (*Result, error) {
	// Seed: one state per directed edge out of the terminal, all zeros.
	zeros := make(core.Values, len(e.g.Vars()))
	for _, arc := range e.model.ArcsOut(e.g.TerminalID()) {
		if !e.push(state{arc: arc, parent: -1, values: zeros}) {
			e.res.Outcome = BudgetExceeded
			return &e.res, nil
		}
	}
	e.opts.Logger.Debug().
		Int("seeds", len(e.arena)).
		Int("arcs", e.model.ArcCount()).
		Msg("search seeded")

	for e.head < len(e.arena) {
		// Cancellation check, once per popped state.
		select {
		case <-e.opts.Ctx.Done():
			e.res.Outcome = Canceled
			return &e.res, nil
		default:
		}

		// Iteration budget.
		if e.res.Iterations >= e.opts.IterationLimit {
			e.res.Outcome = BudgetExceeded
			return &e.res, nil
		}
		e.res.Iterations++

		idx := e.head
		e.head++
		node := e.model.Arc(e.arena[idx].arc).To

		// Witness candidate: initial node with matching prescriptions.
		if node == e.g.InitialID() && e.fixedMatch(e.arena[idx].values) {
			if sol := e.emit(idx); sol != nil {
				e.res.Outcome = Satisfiable
				e.res.Solution = sol
				return &e.res, nil
			}
			e.res.Rejected++
			// A rejected candidate resumes the search; the walk may
			// still continue through the initial node.
		}

		// A terminal reached mid-search is dead: walks cannot
		// re-traverse through it.
		if node == e.g.TerminalID() {
			continue
		}

		next, changed, lhs := e.inverse(node, e.arena[idx].values)

		// Pruning: a monotone variable outside its interval can never
		// return; drop every expansion from this state.
		if changed && e.intervals != nil && !e.intervals[lhs].Contains(next[lhs]) {
			e.res.Pruned++
			continue
		}

		for _, su := range e.model.Successors(e.arena[idx].arc) {
			if !e.push(state{arc: su.Arc, parent: idx, via: su.Via, values: next}) {
				e.res.Outcome = BudgetExceeded
				return &e.res, nil
			}
		}
	}

	e.res.Outcome = Unsatisfiable

	return &e.res, nil
}

// push appends a state, reporting false when the queue capacity is
// exhausted (treated identically to the iteration budget).
func (e *engine) push(s state) bool {
	if len(e.arena) >= e.opts.QueueCapacity {
		return false
	}
	e.arena = append(e.arena, s)

	return true
}

// fixedMatch reports whether values satisfy every fixed prescription.
func (e *engine) fixedMatch(values core.Values) bool {
	for _, f := range e.fixed {
		if values[f.slot] != f.value {
			return false
		}
	}

	return true
}

// inverse applies the node's inverse operation, returning the successor
// values, whether anything changed, and the modified slot. Values are
// shared unchanged for identity operations and cloned before mutation
// otherwise, so no state's values ever alias a mutated slice.
func (e *engine) inverse(node int, values core.Values) (next core.Values, changed bool, lhs int) {
	resolve := func(o core.Operand) int64 {
		if o.IsLit() {
			return o.Literal()
		}
		s, _ := e.g.Slot(o.Name())
		return values[s]
	}
	apply := func(name string, delta int64) (core.Values, bool, int) {
		s, _ := e.g.Slot(name)
		out := values.Clone()
		out[s] += delta
		return out, true, s
	}

	switch op := e.g.Node(node).Op.(type) {
	case core.Add:
		return apply(op.Lhs, -resolve(op.Rhs))
	case core.Sub:
		return apply(op.Lhs, resolve(op.Rhs))
	case core.CondInc:
		if resolve(op.Rhs) > 0 {
			return apply(op.Lhs, -1)
		}
	case core.CondDec:
		if resolve(op.Rhs) > 0 {
			return apply(op.Lhs, 1)
		}
	}

	return values, false, 0
}

// emit reconstructs the forward walk for the accepted state and runs the
// verifier. Returns nil when the evaluator rejects the candidate.
func (e *engine) emit(idx int) *core.Solution {
	// The back-pointer chain runs from the initial node toward the
	// seed, so reading it out is already forward walk order; elided
	// junctions are re-inserted from the transition records.
	var names []string
	for i := idx; i >= 0; i = e.arena[i].parent {
		names = append(names, e.g.Node(e.model.Arc(e.arena[i].arc).To).Name)
		for j := len(e.arena[i].via) - 1; j >= 0; j-- {
			names = append(names, e.g.Node(e.arena[i].via[j]).Name)
		}
	}
	names = append(names, e.g.Node(e.g.TerminalID()).Name)

	assignment := e.g.AsMap(e.arena[idx].values)
	sol, ok, err := eval.Evaluate(e.g, names, assignment)
	if err != nil || !ok {
		e.opts.Logger.Warn().
			Err(err).
			Strs("walk", names).
			Msg("witness candidate rejected by verifier")
		return nil
	}
	e.opts.Logger.Debug().
		Int("iterations", e.res.Iterations).
		Int("length", len(names)).
		Msg("witness verified")

	return sol
}
