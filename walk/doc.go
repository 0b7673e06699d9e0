// Package walk turns an undirected conlog graph into the space of legal
// non-U-turning walks.
//
// What
//
//   - The model operates over directed arcs (u→v), not vertices, so that
//     "no immediate U-turn" is a local constraint: from (u→v) the legal
//     successors are (v→w) for every neighbor w ≠ u.
//   - ArcsOut(seed) enumerates the directed arcs leaving a vertex — the
//     frontier a search seeds from.
//   - Optional none–none elision collapses chains of NoOp junctions:
//     a transition whose intermediate arc joins two NoOp vertices
//     forwards directly to that arc's successors, shortening the walks
//     a search must enumerate. Every elided transition records the
//     skipped vertices, so walks reconstructed from arc chains remain
//     true walks of the underlying graph.
//
// Determinism
//
//	Arc ids and successor lists follow the graph's adjacency insertion
//	order exactly; two models built from the same graph are identical.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Construction: O(V + E + Σ deg²) for successor lists.
//   - Successors / ArcsOut: O(1) lookup of precomputed slices.
package walk
