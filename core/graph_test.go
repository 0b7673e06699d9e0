package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/koragendum/conlog/core"
)

// buildDiodeIR assembles the diode gadget by hand.
func buildDiodeIR(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	nodes := []core.Node{
		{Name: "initial", Op: core.Initial{Fixed: []core.FixedVar{{Name: "y", Value: 1}, {Name: "z", Value: 0}}}},
		{Name: "a", Op: core.Sub{Lhs: "y", Rhs: core.Lit(1)}},
		{Name: "b", Op: core.CondInc{Lhs: "z", Rhs: core.Var("y")}},
		{Name: "c", Op: core.Add{Lhs: "y", Rhs: core.Lit(1)}},
		{Name: "d", Op: core.Sub{Lhs: "y", Rhs: core.Lit(1)}},
		{Name: "terminal", Op: core.Terminal{}},
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", n.Name, err)
		}
	}
	for _, e := range [][2]string{{"initial", "a"}, {"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "terminal"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}

	return g
}

// TestGraph_ConstructionErrors verifies node and edge rejection.
func TestGraph_ConstructionErrors(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddNode(core.Node{Name: ""}); !errors.Is(err, core.ErrEmptyNodeName) {
		t.Errorf("empty name: want ErrEmptyNodeName, got %v", err)
	}
	if err := g.AddNode(core.Node{Name: "a"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(core.Node{Name: "a"}); !errors.Is(err, core.ErrDuplicateNode) {
		t.Errorf("duplicate: want ErrDuplicateNode, got %v", err)
	}
	if err := g.AddEdge("a", "missing"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("missing endpoint: want ErrNodeNotFound, got %v", err)
	}
	if err := g.AddEdge("a", "a"); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
	if err := g.AddNode(core.Node{Name: "b"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge("b", "a"); !errors.Is(err, core.ErrDuplicateEdge) {
		t.Errorf("parallel edge: want ErrDuplicateEdge, got %v", err)
	}
}

// TestGraph_ValidateInvariants covers each structural invariant.
func TestGraph_ValidateInvariants(t *testing.T) {
	// no initial
	g := core.NewGraph()
	_ = g.AddNode(core.Node{Name: "t", Op: core.Terminal{}})
	if err := g.Validate(); !errors.Is(err, core.ErrNoInitial) {
		t.Errorf("want ErrNoInitial, got %v", err)
	}

	// no terminal
	g = core.NewGraph()
	_ = g.AddNode(core.Node{Name: "i", Op: core.Initial{}})
	if err := g.Validate(); !errors.Is(err, core.ErrNoTerminal) {
		t.Errorf("want ErrNoTerminal, got %v", err)
	}

	// duplicate initial
	g = core.NewGraph()
	_ = g.AddNode(core.Node{Name: "i", Op: core.Initial{}})
	_ = g.AddNode(core.Node{Name: "j", Op: core.Initial{}})
	_ = g.AddNode(core.Node{Name: "t", Op: core.Terminal{}})
	if err := g.Validate(); !errors.Is(err, core.ErrMultipleInitial) {
		t.Errorf("want ErrMultipleInitial, got %v", err)
	}

	// variable declared twice
	g = core.NewGraph()
	_ = g.AddNode(core.Node{Name: "i", Op: core.Initial{
		Free:  []string{"x"},
		Fixed: []core.FixedVar{{Name: "x", Value: 3}},
	}})
	_ = g.AddNode(core.Node{Name: "t", Op: core.Terminal{}})
	if err := g.Validate(); !errors.Is(err, core.ErrRedeclaredVariable) {
		t.Errorf("want ErrRedeclaredVariable, got %v", err)
	}

	// operation references an undeclared variable
	g = core.NewGraph()
	_ = g.AddNode(core.Node{Name: "i", Op: core.Initial{Free: []string{"x"}}})
	_ = g.AddNode(core.Node{Name: "op", Op: core.Add{Lhs: "ghost", Rhs: core.Lit(1)}})
	_ = g.AddNode(core.Node{Name: "t", Op: core.Terminal{}})
	if err := g.Validate(); !errors.Is(err, core.ErrUndeclaredVariable) {
		t.Errorf("want ErrUndeclaredVariable, got %v", err)
	}

	// declared-but-unused variables are fine
	g = core.NewGraph()
	_ = g.AddNode(core.Node{Name: "i", Op: core.Initial{Fixed: []core.FixedVar{{Name: "a", Value: 1}}}})
	_ = g.AddNode(core.Node{Name: "t", Op: core.Terminal{}})
	_ = g.AddEdge("i", "t")
	if err := g.Validate(); err != nil {
		t.Errorf("unused declared var: %v", err)
	}
}

// TestGraph_SlotsAndAdjacency locks in slot order and neighbor order.
func TestGraph_SlotsAndAdjacency(t *testing.T) {
	g := buildDiodeIR(t)
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// Slots: free first (none here), then fixed in declaration order.
	if want := []string{"y", "z"}; !reflect.DeepEqual(g.Vars(), want) {
		t.Errorf("Vars() = %v; want %v", g.Vars(), want)
	}
	if s, ok := g.Slot("z"); !ok || s != 1 {
		t.Errorf("Slot(z) = %d,%v; want 1,true", s, ok)
	}

	// Neighbors come back in edge-insertion order.
	id, _ := g.ID("b")
	var names []string
	for _, w := range g.Neighbors(id) {
		names = append(names, g.Node(w).Name)
	}
	if want := []string{"a", "c"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Neighbors(b) = %v; want %v", names, want)
	}

	if g.Node(g.InitialID()).Name != "initial" || g.Node(g.TerminalID()).Name != "terminal" {
		t.Errorf("initial/terminal ids resolve to %q/%q",
			g.Node(g.InitialID()).Name, g.Node(g.TerminalID()).Name)
	}

	m := g.AsMap(core.Values{7, 9})
	if m["y"] != 7 || m["z"] != 9 {
		t.Errorf("AsMap = %v", m)
	}
}

// TestOperation_Strings covers the program-text renderings.
func TestOperation_Strings(t *testing.T) {
	cases := []struct {
		op   core.Operation
		want string
	}{
		{core.Add{Lhs: "x", Rhs: core.Lit(3)}, "x+=3"},
		{core.Sub{Lhs: "x", Rhs: core.Var("n")}, "x-=n"},
		{core.CondInc{Lhs: "z", Rhs: core.Var("y")}, "z++?y"},
		{core.CondDec{Lhs: "z", Rhs: core.Var("y")}, "z--?y"},
		{core.IntegerPrint{Arg: core.Var("x")}, "iprint x"},
		{core.UnicodePrint{Arg: core.Lit(104)}, "uprint 104"},
		{core.Terminal{}, "Terminal"},
		{core.NoOp{}, "none"},
		{core.Initial{Free: []string{"T"}, Fixed: []core.FixedVar{{Name: "n", Value: 6}}}, "n=6, T"},
	}
	for _, c := range cases {
		if got := c.op.String(); got != c.want {
			t.Errorf("String() = %q; want %q", got, c.want)
		}
	}
}

// TestOutput_String covers the mixed character/integer rendering.
func TestOutput_String(t *testing.T) {
	out := core.Output{
		{Int: 'h', Char: true},
		{Int: 'i', Char: true},
		{Int: 42},
		{Int: 7},
		{Int: '!', Char: true},
	}
	if got, want := out.String(), "hi 42 7 !"; got != want {
		t.Errorf("Output.String() = %q; want %q", got, want)
	}
	if got := (core.Output{}).String(); got != "" {
		t.Errorf("empty output renders %q", got)
	}
}
