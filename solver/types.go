// Package solver: options, outcomes, and error definitions.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/koragendum/conlog/core"
)

// Default budgets. The iteration limit caps popped states; the queue
// capacity caps states ever enqueued (the arena size).
const (
	DefaultIterationLimit = 65536
	DefaultQueueCapacity  = 1 << 24
)

// Sentinel errors for solver invocation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Outcome classifies a finished search.
type Outcome uint8

const (
	// Satisfiable means a verified witness was found.
	Satisfiable Outcome = iota

	// Unsatisfiable means the reachable state space was exhausted
	// without a witness.
	Unsatisfiable

	// BudgetExceeded means the iteration budget or the queue capacity
	// ran out first; satisfiability is unknown.
	BudgetExceeded

	// Canceled means the caller's context was done.
	Canceled
)

// String renders the outcome for diagnostics.
func (o Outcome) String() string {
	switch o {
	case Satisfiable:
		return "satisfiable"
	case Unsatisfiable:
		return "unsatisfiable"
	case BudgetExceeded:
		return "budget exceeded"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Result is the outcome of one Solve call plus search diagnostics.
type Result struct {
	// Outcome classifies the search.
	Outcome Outcome

	// Solution is the verified witness; non-nil iff Outcome is Satisfiable.
	Solution *core.Solution

	// Iterations counts popped states.
	Iterations int

	// Pruned counts states dropped by the monotonicity intervals.
	Pruned int

	// Rejected counts witness candidates the verifier refused.
	Rejected int
}

// Option configures Solve via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds the solver's tunable parameters.
type Options struct {
	// Ctx allows cooperative cancellation; polled once per popped state.
	Ctx context.Context

	// IterationLimit caps popped states (default 65536).
	IterationLimit int

	// QueueCapacity caps enqueued states (default 1<<24).
	QueueCapacity int

	// Elide collapses NoOp–NoOp transitions in the walk model.
	Elide bool

	// Prune enables monotonicity-interval pruning (default true).
	Prune bool

	// Logger receives Debug-level search tracing; defaults to a no-op.
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the solver defaults: background context,
// default budgets, elision off, pruning on, no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		IterationLimit: DefaultIterationLimit,
		QueueCapacity:  DefaultQueueCapacity,
		Prune:          true,
		Logger:         zerolog.Nop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIterationLimit caps the number of popped states.
//
//	n > 0: limit to n pops
//	n <= 0: invalid option → ErrOptionViolation
func WithIterationLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: IterationLimit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.IterationLimit = n
	}
}

// WithQueueCapacity caps the number of enqueued states.
//
//	n > 0: limit to n states
//	n <= 0: invalid option → ErrOptionViolation
func WithQueueCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: QueueCapacity must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.QueueCapacity = n
	}
}

// WithNoOpElision enables NoOp–NoOp elision in the walk model,
// shortening the walks the search must enumerate.
func WithNoOpElision() Option {
	return func(o *Options) { o.Elide = true }
}

// WithoutPruning disables the monotonicity pruner. Pruning never changes
// which graphs are satisfiable; this exists to test exactly that, and to
// aid debugging of the analyzer.
func WithoutPruning() Option {
	return func(o *Options) { o.Prune = false }
}

// WithLogger attaches a zerolog logger for search tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
