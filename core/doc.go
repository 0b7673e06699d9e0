// Package core defines the central Graph, Node, and Operation types of a
// conlog program, and the Solution type produced by the evaluator and solver.
//
// What
//
//   - A program is an undirected simple graph whose vertices carry small
//     arithmetic operations over named integer variables.
//   - Exactly one vertex bears the Initial operation (declaring the free and
//     fixed variables) and exactly one bears Terminal.
//   - Operations form a closed tagged variant: Initial, Terminal, Add, Sub,
//     CondInc, CondDec, IntegerPrint, UnicodePrint, and NoOp.
//
// Determinism
//
//	Adjacency lists preserve edge-insertion order, and every consumer
//	(the walk model, the evaluator, the solver) enumerates neighbors in
//	exactly that order. Two runs over the same graph therefore visit
//	states identically.
//
// Representation
//
//	Vertices receive dense integer ids at insertion; name resolution
//	happens once, at ingest. Variable names are likewise mapped to dense
//	slots (declaration order on the Initial operation), so hot paths
//	index fixed-length arrays instead of hashing strings.
//
// Errors
//
//	ErrEmptyNodeName     - node name is the empty string.
//	ErrDuplicateNode     - node name already present.
//	ErrNodeNotFound      - edge endpoint does not exist.
//	ErrSelfLoop          - self-loops are forbidden.
//	ErrDuplicateEdge     - parallel edges are forbidden.
//	ErrNoInitial         - no vertex bears Initial.
//	ErrMultipleInitial   - more than one vertex bears Initial.
//	ErrNoTerminal        - no vertex bears Terminal.
//	ErrMultipleTerminal  - more than one vertex bears Terminal.
//	ErrRedeclaredVariable - a variable is declared twice on Initial.
//	ErrUndeclaredVariable - an operation references an undeclared variable.
package core
