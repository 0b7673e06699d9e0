// Package monotone decides, from the static graph alone, which variables
// can only grow and which can only shrink along any walk, and derives
// per-variable value intervals the solver uses to prune its search.
//
// What
//
//   - Analyze builds an auxiliary directed graph over the symbols
//     {v, v⁺, v⁻ | v ∈ vars} ∪ {⊕, ⊖}, adding edges once per operation
//     node. A variable is monotone nondecreasing iff ⊖ is unreachable
//     from its symbol, and monotone nonincreasing iff ⊕ is unreachable.
//     A variable in both sets is constant along every walk.
//   - Edges are dependency edges: "if v changes by any amount along any
//     walk, at least one of these sink configurations must be
//     reachable." Because reachability is transitive, the fixpoint is a
//     single traversal per variable, not an iterative relaxation.
//   - Derived bounds combine monotonicity with free/fixed status into
//     [lo, hi] intervals (signed-64-bit extremes for unbounded sides):
//     a nondecreasing variable must reach zero from below, so free ⇒
//     hi = 0 and fixed c ⇒ lo = c; symmetrically for nonincreasing.
//
// Why
//
//   - The reverse search drops any state whose values leave these
//     intervals: no continuation can rescue a monotone variable that
//     has overshot. This is the pruning that makes the exponentially
//     branching search tractable.
//
// The package also provides Bound, the at-least/at-most/unknown
// arithmetic lattice with total + and −, which instantiates the
// evaluator's abstract domain for partial evaluation.
//
// Complexity (n = |vars|, V = |nodes|)
//
//   - Symbol graph construction: O(V + n).
//   - Reachability: O(n · (n + edges)) via one DFS per variable over a
//     graph of 3n+2 symbols.
package monotone
