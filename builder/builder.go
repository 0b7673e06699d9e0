// SPDX-License-Identifier: MIT
// Package builder: the gadget corpus.
package builder

import (
	"fmt"

	"github.com/koragendum/conlog/core"
)

// assemble builds and validates a graph from node and edge lists.
func assemble(nodes []core.Node, edges [][2]string) (*core.Graph, error) {
	g := core.NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	return g, nil
}

// TriangleSum is the triangle-sum maze: free T, fixed n, and a cycle
// through the initial node that subtracts a decreasing n from T on each
// lap before exiting to the terminal. Solutions assign T a triangular
// number (for n = 6, either 15 or 21 depending on lap direction).
func TriangleSum(n int64) (*core.Graph, error) {
	nodes := []core.Node{
		{Name: "initial", Op: core.Initial{
			Free:  []string{"T"},
			Fixed: []core.FixedVar{{Name: "n", Value: n}},
		}},
		{Name: "decr_x", Op: core.Sub{Lhs: "n", Rhs: core.Lit(1)}},
		{Name: "sub_t_x", Op: core.Sub{Lhs: "T", Rhs: core.Var("n")}},
		{Name: "none", Op: core.NoOp{}},
		{Name: "terminal", Op: core.Terminal{}},
	}
	edges := [][2]string{
		{"initial", "decr_x"},
		{"decr_x", "sub_t_x"},
		{"sub_t_x", "none"},
		{"none", "initial"},
		{"none", "terminal"},
	}

	return assemble(nodes, edges)
}

// Diode is the one-way gadget: fixed y=1, z=0 along a simple path whose
// conditional increment only fires when traversed in the intended
// direction. Satisfiable with an empty free assignment.
func Diode() (*core.Graph, error) {
	nodes := []core.Node{
		{Name: "initial", Op: core.Initial{
			Fixed: []core.FixedVar{{Name: "y", Value: 1}, {Name: "z", Value: 0}},
		}},
		{Name: "dec_y1", Op: core.Sub{Lhs: "y", Rhs: core.Lit(1)}},
		{Name: "gate", Op: core.CondInc{Lhs: "z", Rhs: core.Var("y")}},
		{Name: "inc_y", Op: core.Add{Lhs: "y", Rhs: core.Lit(1)}},
		{Name: "dec_y2", Op: core.Sub{Lhs: "y", Rhs: core.Lit(1)}},
		{Name: "terminal", Op: core.Terminal{}},
	}
	edges := [][2]string{
		{"initial", "dec_y1"},
		{"dec_y1", "gate"},
		{"gate", "inc_y"},
		{"inc_y", "dec_y2"},
		{"dec_y2", "terminal"},
	}

	return assemble(nodes, edges)
}

// FibonacciSwap is a linear chain whose forward evaluation reduces to
// the identity exchanging x and y; both must therefore be zero at the
// terminal, making x=0, y=0 the only solution.
func FibonacciSwap() (*core.Graph, error) {
	nodes := []core.Node{
		{Name: "initial", Op: core.Initial{
			Free:  []string{"x", "y"},
			Fixed: []core.FixedVar{{Name: "z", Value: 0}},
		}},
		{Name: "s1", Op: core.Add{Lhs: "z", Rhs: core.Var("y")}},
		{Name: "s2", Op: core.Sub{Lhs: "y", Rhs: core.Var("z")}},
		{Name: "s3", Op: core.Add{Lhs: "y", Rhs: core.Var("x")}},
		{Name: "s4", Op: core.Sub{Lhs: "x", Rhs: core.Var("y")}},
		{Name: "s5", Op: core.Add{Lhs: "x", Rhs: core.Var("z")}},
		{Name: "s6", Op: core.Sub{Lhs: "z", Rhs: core.Var("x")}},
		{Name: "terminal", Op: core.Terminal{}},
	}
	edges := [][2]string{
		{"initial", "s1"},
		{"s1", "s2"},
		{"s2", "s3"},
		{"s3", "s4"},
		{"s4", "s5"},
		{"s5", "s6"},
		{"s6", "terminal"},
	}

	return assemble(nodes, edges)
}

// Stuck is a trivially unsatisfiable program: a fixed variable holds 1
// and nothing along the only path can change it.
func Stuck() (*core.Graph, error) {
	nodes := []core.Node{
		{Name: "initial", Op: core.Initial{
			Fixed: []core.FixedVar{{Name: "a", Value: 1}},
		}},
		{Name: "terminal", Op: core.Terminal{}},
	}
	edges := [][2]string{{"initial", "terminal"}}

	return assemble(nodes, edges)
}

// Greeting prints "hi" on the way to the terminal: fixed h='h' and
// i='i' are printed as characters, then each is zeroed along a simple
// path, so the walk is unique.
func Greeting() (*core.Graph, error) {
	nodes := []core.Node{
		{Name: "initial", Op: core.Initial{
			Fixed: []core.FixedVar{
				{Name: "h", Value: 'h'},
				{Name: "i", Value: 'i'},
			},
		}},
		{Name: "say_h", Op: core.UnicodePrint{Arg: core.Var("h")}},
		{Name: "say_i", Op: core.UnicodePrint{Arg: core.Var("i")}},
		{Name: "zero_h", Op: core.Sub{Lhs: "h", Rhs: core.Lit('h')}},
		{Name: "zero_i", Op: core.Sub{Lhs: "i", Rhs: core.Lit('i')}},
		{Name: "terminal", Op: core.Terminal{}},
	}
	edges := [][2]string{
		{"initial", "say_h"},
		{"say_h", "say_i"},
		{"say_i", "zero_h"},
		{"zero_h", "zero_i"},
		{"zero_i", "terminal"},
	}

	return assemble(nodes, edges)
}

// Junctions is the triangle-sum maze with a NoOp corridor between the
// cycle and the terminal, exercising none–none elision.
func Junctions(n int64) (*core.Graph, error) {
	nodes := []core.Node{
		{Name: "initial", Op: core.Initial{
			Free:  []string{"T"},
			Fixed: []core.FixedVar{{Name: "n", Value: n}},
		}},
		{Name: "decr_x", Op: core.Sub{Lhs: "n", Rhs: core.Lit(1)}},
		{Name: "sub_t_x", Op: core.Sub{Lhs: "T", Rhs: core.Var("n")}},
		{Name: "none", Op: core.NoOp{}},
		{Name: "mid1", Op: core.NoOp{}},
		{Name: "mid2", Op: core.NoOp{}},
		{Name: "terminal", Op: core.Terminal{}},
	}
	edges := [][2]string{
		{"initial", "decr_x"},
		{"decr_x", "sub_t_x"},
		{"sub_t_x", "none"},
		{"none", "initial"},
		{"none", "mid1"},
		{"mid1", "mid2"},
		{"mid2", "terminal"},
	}

	return assemble(nodes, edges)
}
