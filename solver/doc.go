// Package solver decides satisfiability of conlog programs by
// breadth-first search over walk-states, run in reverse.
//
// What
//
//   - The engine starts at the terminal vertex with every variable zero
//     and explores backwards, applying each vertex's inverse operation
//     as it enters that vertex. A state whose vertex is the initial one
//     and whose values match every fixed-variable prescription is a
//     witness candidate.
//   - Candidates are verified by replaying the reconstructed walk
//     through the forward evaluator; only verified walks are returned.
//     A rejected candidate resumes the search (this guards the inverse
//     semantics and the NoOp elision).
//   - Monotonicity pruning: a state whose freshly updated variable has
//     left its derived [lo, hi] interval is dropped with all of its
//     would-be successors; no continuation can rescue a monotone
//     variable that has overshot.
//
// Queue discipline
//
//	Strictly first-in-first-out, so the first witness found is shortest
//	in state transitions; ties fall to enqueue order. Neighbor
//	enumeration follows the graph's adjacency insertion order, making
//	two runs over identical inputs byte-identical.
//
// Resource model
//
//	Single-threaded and CPU-bound; Solve returns exactly once. States
//	are arena-allocated and back-pointers are arena indices, so the
//	whole search forest is released together when the search ends. The
//	iteration budget caps popped states; the queue capacity caps the
//	arena. Exhausting either yields BudgetExceeded. Cancellation is
//	cooperative: the context is polled once per popped state.
//
// Outcomes
//
//   - Satisfiable     — a verified Solution is attached.
//   - Unsatisfiable   — the reachable state space was exhausted.
//   - BudgetExceeded  — iteration budget or queue capacity ran out.
//   - Canceled        — the caller's context was done.
//
// Errors
//
//	ErrGraphNil, ErrOptionViolation, and any core validation error
//	(surfaced immediately; invariant violations are programmer errors).
package solver
