// Package conlog is a solver for Satisfying Maze Traversal puzzles:
// programs are undirected graphs whose vertices carry small arithmetic
// operations over integer variables, and a solution is a U-turn-free
// walk from the initial vertex to the terminal one that satisfies the
// fixed-variable boundary conditions and leaves every variable zero at
// the end.
//
// The module is organized as flat subpackages, leaves first:
//
//	core/     — value model, operation taxonomy, graph IR, Solution
//	eval/     — forward evaluator (source of truth) + abstract partial evaluation
//	monotone/ — monotonicity analyzer, bound lattice, pruning intervals
//	walk/     — directed-arc walk model with optional NoOp elision
//	solver/   — reverse breadth-first search engine + witness verifier
//	frontend/ — the line-oriented textual language
//	builder/  — deterministic puzzle-graph corpus for tests and examples
//	cmd/      — the conlog command-line interface
//
// Quick example, solving the triangle-sum maze:
//
//	g, _ := builder.TriangleSum(6)
//	res, err := solver.Solve(g)
//	if err != nil {
//	    // invariant violation in the graph
//	}
//	switch res.Outcome {
//	case solver.Satisfiable:
//	    fmt.Println(res.Solution.Assignment["T"]) // a triangular number
//	case solver.Unsatisfiable, solver.BudgetExceeded:
//	    // no witness within budget
//	}
package conlog
