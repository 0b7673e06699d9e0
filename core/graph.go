// SPDX-License-Identifier: MIT
// Package core: the Graph container.
//
// Role: node/edge ingestion with dense-id resolution, deterministic
// adjacency, and whole-graph invariant validation.
package core

import "fmt"

// Graph is an undirected simple graph of operation-bearing nodes.
//
// Nodes receive dense integer ids in insertion order; adjacency lists
// keep edge-insertion order. Both orders are part of the public
// contract: the solver's state expansion is deterministic because of
// them. A Graph is not safe for concurrent mutation; once validated it
// is shared immutably between the walk model, the evaluator, and the
// solver.
type Graph struct {
	nodes []Node
	index map[string]int // node name → dense id
	adj   [][]int        // adjacency, edge-insertion order
	edges [][2]int       // as added, endpoints by id

	initial  int // id of the Initial node, -1 until validated
	terminal int // id of the Terminal node, -1 until validated

	vars []string       // slot → variable name, Initial declaration order
	slot map[string]int // variable name → slot
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index:    make(map[string]int),
		slot:     make(map[string]int),
		initial:  -1,
		terminal: -1,
	}
}

// AddNode inserts n, assigning it the next dense id.
// Returns ErrEmptyNodeName or ErrDuplicateNode on invalid input.
// A nil operation is normalized to NoOp.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.Name == "" {
		return ErrEmptyNodeName
	}
	if _, ok := g.index[n.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name)
	}
	if n.Op == nil {
		n.Op = NoOp{}
	}
	g.index[n.Name] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)

	return nil
}

// AddEdge inserts the undirected edge a—b.
// Returns ErrNodeNotFound for unknown endpoints, ErrSelfLoop when a == b,
// and ErrDuplicateEdge for a parallel edge.
// Complexity: O(deg(a)) for the duplicate check.
func (g *Graph) AddEdge(a, b string) error {
	ia, ok := g.index[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	ib, ok := g.index[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}
	if ia == ib {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	for _, w := range g.adj[ia] {
		if w == ib {
			return fmt.Errorf("%w: %q -- %q", ErrDuplicateEdge, a, b)
		}
	}
	g.adj[ia] = append(g.adj[ia], ib)
	g.adj[ib] = append(g.adj[ib], ia)
	g.edges = append(g.edges, [2]int{ia, ib})

	return nil
}

// Validate checks every structural invariant:
//
//  1. Exactly one Initial and exactly one Terminal node.
//  2. No variable declared twice on Initial (free and fixed are disjoint).
//  3. Every variable referenced by any operation is declared on Initial.
//
// On success it records the initial/terminal ids and freezes the
// variable-slot mapping (free names first, then fixed, declaration
// order). Validate must be called before the graph is handed to the
// evaluator or solver.
// Complexity: O(V + vars).
func (g *Graph) Validate() error {
	g.initial, g.terminal = -1, -1
	for id, n := range g.nodes {
		switch n.Op.(type) {
		case Initial:
			if g.initial >= 0 {
				return fmt.Errorf("%w: %q and %q", ErrMultipleInitial, g.nodes[g.initial].Name, n.Name)
			}
			g.initial = id
		case Terminal:
			if g.terminal >= 0 {
				return fmt.Errorf("%w: %q and %q", ErrMultipleTerminal, g.nodes[g.terminal].Name, n.Name)
			}
			g.terminal = id
		}
	}
	if g.initial < 0 {
		return ErrNoInitial
	}
	if g.terminal < 0 {
		return ErrNoTerminal
	}

	// Freeze the slot mapping: free names first, then fixed.
	decl := g.nodes[g.initial].Op.(Initial)
	g.vars = g.vars[:0]
	g.slot = make(map[string]int, len(decl.Free)+len(decl.Fixed))
	for _, name := range decl.Free {
		if _, ok := g.slot[name]; ok {
			return fmt.Errorf("%w: %q", ErrRedeclaredVariable, name)
		}
		g.slot[name] = len(g.vars)
		g.vars = append(g.vars, name)
	}
	for _, fv := range decl.Fixed {
		if _, ok := g.slot[fv.Name]; ok {
			return fmt.Errorf("%w: %q", ErrRedeclaredVariable, fv.Name)
		}
		g.slot[fv.Name] = len(g.vars)
		g.vars = append(g.vars, fv.Name)
	}

	// Every referenced variable must be declared.
	for _, n := range g.nodes {
		for _, name := range referencedVars(n.Op) {
			if _, ok := g.slot[name]; !ok {
				return fmt.Errorf("%w: %q at node %q", ErrUndeclaredVariable, name, n.Name)
			}
		}
	}

	return nil
}

// referencedVars lists the variable names an operation reads or writes.
func referencedVars(op Operation) []string {
	var names []string
	operand := func(o Operand) {
		if !o.IsLit() {
			names = append(names, o.Name())
		}
	}
	switch v := op.(type) {
	case Add:
		names = append(names, v.Lhs)
		operand(v.Rhs)
	case Sub:
		names = append(names, v.Lhs)
		operand(v.Rhs)
	case CondInc:
		names = append(names, v.Lhs)
		operand(v.Rhs)
	case CondDec:
		names = append(names, v.Lhs)
		operand(v.Rhs)
	case IntegerPrint:
		operand(v.Arg)
	case UnicodePrint:
		operand(v.Arg)
	case Initial, Terminal, NoOp:
		// declare or inert; nothing referenced
	}

	return names
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Node returns the node with dense id.
func (g *Graph) Node(id int) Node { return g.nodes[id] }

// ID resolves a node name to its dense id.
func (g *Graph) ID(name string) (int, bool) {
	id, ok := g.index[name]
	return id, ok
}

// Neighbors returns the adjacency list of id in edge-insertion order.
// The returned slice is shared; callers must not mutate it.
func (g *Graph) Neighbors(id int) []int { return g.adj[id] }

// Edges returns the undirected edges in insertion order, endpoints by id.
// The returned slice is shared; callers must not mutate it.
func (g *Graph) Edges() [][2]int { return g.edges }

// InitialID returns the dense id of the Initial node. Valid after Validate.
func (g *Graph) InitialID() int { return g.initial }

// TerminalID returns the dense id of the Terminal node. Valid after Validate.
func (g *Graph) TerminalID() int { return g.terminal }

// InitialOp returns the Initial declaration. Valid after Validate.
func (g *Graph) InitialOp() Initial { return g.nodes[g.initial].Op.(Initial) }

// Vars returns the variable names in slot order (free first, then fixed,
// declaration order). The returned slice is shared; do not mutate.
func (g *Graph) Vars() []string { return g.vars }

// Slot resolves a variable name to its dense slot.
func (g *Graph) Slot(name string) (int, bool) {
	s, ok := g.slot[name]
	return s, ok
}

// Values is a packed variable-values vector indexed by slot.
type Values []int64

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	copy(out, v)

	return out
}

// AsMap unpacks v into a name-keyed map using the graph's slot order.
func (g *Graph) AsMap(v Values) map[string]int64 {
	m := make(map[string]int64, len(v))
	for i, name := range g.vars {
		m[name] = v[i]
	}

	return m
}
