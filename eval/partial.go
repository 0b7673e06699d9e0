// Package eval: abstract partial evaluation.
package eval

import (
	"fmt"

	"github.com/koragendum/conlog/core"
)

// Value is the contract an abstract arithmetic domain must satisfy for
// Partial: total addition and subtraction, a lattice join, and a sign
// query for conditional guards.
type Value[V any] interface {
	// Add returns the abstract sum of the receiver and v.
	Add(v V) V

	// Sub returns the abstract difference of the receiver and v.
	Sub(v V) V

	// Join returns an upper bound of the receiver and v in the domain's
	// precision order (a value no more precise than either).
	Join(v V) V

	// Positive reports whether the value is strictly positive. known is
	// false when the domain cannot decide.
	Positive() (positive, known bool)
}

// Partial runs the evaluator's sweep over an abstract domain V. It is
// identical to Evaluate except that it stops at the first Terminal visit
// without the zero-sum check, performs no boundary check, and threads
// abstract values through + and −. lit injects integer literals into V.
//
// A conditional operation whose guard the domain cannot decide widens
// its target to the join of "fired" and "did not fire".
//
// Returns the final name-keyed values. Print operations contribute
// nothing here; partial evaluation has no output stream.
func Partial[V Value[V]](g *core.Graph, walk []string, initial map[string]V, lit func(int64) V) (map[string]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(walk) == 0 {
		return nil, ErrEmptyWalk
	}

	values := make(map[string]V, len(initial))
	for name, v := range initial {
		values[name] = v
	}
	resolve := func(o core.Operand) (V, error) {
		if o.IsLit() {
			return lit(o.Literal()), nil
		}
		v, present := values[o.Name()]
		if !present {
			return v, fmt.Errorf("%w: %q", ErrMissingVariable, o.Name())
		}
		return v, nil
	}

	for _, name := range walk[1:] {
		id, ok := g.ID(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
		}
		switch op := g.Node(id).Op.(type) {
		case core.Terminal:
			return values, nil
		case core.Add:
			rhs, err := resolve(op.Rhs)
			if err != nil {
				return nil, err
			}
			values[op.Lhs] = values[op.Lhs].Add(rhs)
		case core.Sub:
			rhs, err := resolve(op.Rhs)
			if err != nil {
				return nil, err
			}
			values[op.Lhs] = values[op.Lhs].Sub(rhs)
		case core.CondInc:
			next, err := conditionalStep(values, op.Lhs, op.Rhs, lit(1), resolve)
			if err != nil {
				return nil, err
			}
			values[op.Lhs] = next
		case core.CondDec:
			next, err := conditionalStep(values, op.Lhs, op.Rhs, lit(-1), resolve)
			if err != nil {
				return nil, err
			}
			values[op.Lhs] = next
		default:
			// Initial, NoOp, prints: identity for partial evaluation.
		}
	}

	return values, nil
}

// conditionalStep applies lhs ← lhs + step guarded by rhs > 0, widening
// when the guard is undecidable.
func conditionalStep[V Value[V]](values map[string]V, lhs string, rhs core.Operand, step V, resolve func(core.Operand) (V, error)) (V, error) {
	guard, err := resolve(rhs)
	if err != nil {
		var zero V
		return zero, err
	}
	cur := values[lhs]
	positive, known := guard.Positive()
	switch {
	case known && positive:
		return cur.Add(step), nil
	case known:
		return cur, nil
	default:
		return cur.Join(cur.Add(step)), nil
	}
}

// Int is the concrete signed 64-bit instance of the abstract domain,
// useful for exercising Partial against Evaluate.
type Int int64

// Add implements Value.
func (x Int) Add(y Int) Int { return x + y }

// Sub implements Value.
func (x Int) Sub(y Int) Int { return x - y }

// Join implements Value; joining distinct concrete values is a
// programmer error in a concrete domain, so Join keeps the receiver.
func (x Int) Join(Int) Int { return x }

// Positive implements Value; concrete signs are always known.
func (x Int) Positive() (bool, bool) { return x > 0, true }
