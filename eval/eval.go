// Package eval: concrete forward evaluation.
package eval

import (
	"errors"
	"fmt"

	"github.com/koragendum/conlog/core"
)

// Sentinel errors for malformed evaluator input.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("eval: graph is nil")

	// ErrEmptyWalk is returned for a walk with no nodes.
	ErrEmptyWalk = errors.New("eval: walk is empty")

	// ErrUnknownNode is returned when a walk names a node absent from the graph.
	ErrUnknownNode = errors.New("eval: unknown node in walk")

	// ErrWalkStart is returned when a walk does not begin at the initial node.
	ErrWalkStart = errors.New("eval: walk does not start at the initial node")

	// ErrNoTerminal is returned when a walk never reaches the terminal node.
	ErrNoTerminal = errors.New("eval: walk does not reach the terminal node")

	// ErrMissingVariable is returned when the assignment omits a declared variable.
	ErrMissingVariable = errors.New("eval: assignment missing declared variable")
)

// Evaluate runs walk (a node-name sequence) forward from assignment.
//
// The first node must be the Initial node; it contributes nothing beyond
// defining the variable domain, and later visits to it are identity.
// Each subsequent node applies its operation's forward semantics to a
// working copy of the values. Evaluation stops at the first Terminal
// visit.
//
// Returns (solution, true, nil) when every fixed variable matches its
// prescription and every variable is zero at the terminal;
// (nil, false, nil) when the walk is legal but unsatisfying — a
// distinguishable absence, not an error. Sentinel errors cover
// malformed input only.
//
// Complexity: O(len(walk) + vars).
func Evaluate(g *core.Graph, walk []string, assignment map[string]int64) (*core.Solution, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if len(walk) == 0 {
		return nil, false, ErrEmptyWalk
	}
	first, ok := g.ID(walk[0])
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownNode, walk[0])
	}
	if first != g.InitialID() {
		return nil, false, fmt.Errorf("%w: starts at %q", ErrWalkStart, walk[0])
	}

	// Boundary condition: fixed variables hold their prescribed values.
	decl := g.InitialOp()
	for _, fv := range decl.Fixed {
		got, present := assignment[fv.Name]
		if !present {
			return nil, false, fmt.Errorf("%w: %q", ErrMissingVariable, fv.Name)
		}
		if got != fv.Value {
			return nil, false, nil
		}
	}

	// Pack the working values by slot.
	values := make(core.Values, len(g.Vars()))
	for i, name := range g.Vars() {
		v, present := assignment[name]
		if !present {
			return nil, false, fmt.Errorf("%w: %q", ErrMissingVariable, name)
		}
		values[i] = v
	}

	var output core.Output
	resolve := func(o core.Operand) int64 {
		if o.IsLit() {
			return o.Literal()
		}
		s, _ := g.Slot(o.Name())
		return values[s]
	}

	reachedTerminal := false
	for _, name := range walk[1:] {
		id, ok := g.ID(name)
		if !ok {
			return nil, false, fmt.Errorf("%w: %q", ErrUnknownNode, name)
		}
		switch op := g.Node(id).Op.(type) {
		case core.Initial, core.NoOp:
			// identity
		case core.Terminal:
			reachedTerminal = true
		case core.Add:
			s, _ := g.Slot(op.Lhs)
			values[s] += resolve(op.Rhs)
		case core.Sub:
			s, _ := g.Slot(op.Lhs)
			values[s] -= resolve(op.Rhs)
		case core.CondInc:
			if resolve(op.Rhs) > 0 {
				s, _ := g.Slot(op.Lhs)
				values[s]++
			}
		case core.CondDec:
			if resolve(op.Rhs) > 0 {
				s, _ := g.Slot(op.Lhs)
				values[s]--
			}
		case core.IntegerPrint:
			output = append(output, core.Emit{Int: resolve(op.Arg)})
		case core.UnicodePrint:
			output = append(output, core.Emit{Int: resolve(op.Arg), Char: true})
		}
		if reachedTerminal {
			break
		}
	}
	if !reachedTerminal {
		return nil, false, ErrNoTerminal
	}

	// Zero-sum condition.
	for _, v := range values {
		if v != 0 {
			return nil, false, nil
		}
	}

	sol := &core.Solution{
		Walk:       append([]string(nil), walk...),
		Assignment: copyAssignment(g, assignment),
		Output:     output,
	}

	return sol, true, nil
}

// copyAssignment restricts assignment to the declared variables.
func copyAssignment(g *core.Graph, assignment map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(g.Vars()))
	for _, name := range g.Vars() {
		out[name] = assignment[name]
	}

	return out
}
