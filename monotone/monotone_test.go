package monotone_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koragendum/conlog/builder"
	"github.com/koragendum/conlog/core"
	"github.com/koragendum/conlog/monotone"
)

// chain builds initial—ops…—terminal with the given declarations.
func chain(t *testing.T, init core.Initial, ops ...core.Operation) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{Name: "initial", Op: init}))
	prev := "initial"
	for i, op := range ops {
		name := string(rune('a' + i))
		require.NoError(t, g.AddNode(core.Node{Name: name, Op: op}))
		require.NoError(t, g.AddEdge(prev, name))
		prev = name
	}
	require.NoError(t, g.AddNode(core.Node{Name: "terminal", Op: core.Terminal{}}))
	require.NoError(t, g.AddEdge(prev, "terminal"))
	require.NoError(t, g.Validate())

	return g
}

// TestAnalyze_ConstantIncrement: a variable only ever incremented is
// nondecreasing and not nonincreasing.
func TestAnalyze_ConstantIncrement(t *testing.T) {
	g := chain(t,
		core.Initial{Free: []string{"x"}},
		core.Add{Lhs: "x", Rhs: core.Lit(3)},
	)
	res, err := monotone.Analyze(g)
	require.NoError(t, err)
	require.True(t, res.Nondecreasing("x"))
	require.False(t, res.Nonincreasing("x"))

	// Free and nondecreasing: must start at or below zero.
	iv, ok := res.Interval("x")
	require.True(t, ok)
	require.EqualValues(t, math.MinInt64, iv.Lo)
	require.EqualValues(t, 0, iv.Hi)
}

// TestAnalyze_NegativeLiterals: subtracting a negative constant is an
// increment; adding one is a decrement.
func TestAnalyze_NegativeLiterals(t *testing.T) {
	g := chain(t,
		core.Initial{Free: []string{"x", "y"}},
		core.Sub{Lhs: "x", Rhs: core.Lit(-2)},
		core.Add{Lhs: "y", Rhs: core.Lit(-2)},
	)
	res, err := monotone.Analyze(g)
	require.NoError(t, err)
	require.True(t, res.Nondecreasing("x"))
	require.False(t, res.Nonincreasing("x"))
	require.True(t, res.Nonincreasing("y"))
	require.False(t, res.Nondecreasing("y"))
}

// TestAnalyze_DormantConditional: a conditional with a never-positive
// literal guard contributes nothing.
func TestAnalyze_DormantConditional(t *testing.T) {
	g := chain(t,
		core.Initial{Free: []string{"x"}},
		core.CondInc{Lhs: "x", Rhs: core.Lit(0)},
	)
	res, err := monotone.Analyze(g)
	require.NoError(t, err)
	require.True(t, res.Nondecreasing("x"))
	require.True(t, res.Nonincreasing("x"))
}

// TestAnalyze_TriangleSum: n only shrinks; T subtracts n, whose positive
// direction is reachable, so T only shrinks too.
func TestAnalyze_TriangleSum(t *testing.T) {
	g, err := builder.TriangleSum(6)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	res, err := monotone.Analyze(g)
	require.NoError(t, err)

	require.True(t, res.Nonincreasing("n"))
	require.False(t, res.Nondecreasing("n"))
	require.True(t, res.Nonincreasing("T"))
	require.False(t, res.Nondecreasing("T"))
	require.Equal(t, []string{"T", "n"}, res.NonincreasingVars())

	// Free nonincreasing: lo = 0. Fixed nonincreasing: hi = fixed value.
	ivT, _ := res.Interval("T")
	require.EqualValues(t, 0, ivT.Lo)
	require.EqualValues(t, math.MaxInt64, ivT.Hi)
	ivN, _ := res.Interval("n")
	require.EqualValues(t, math.MinInt64, ivN.Lo)
	require.EqualValues(t, 6, ivN.Hi)

	require.True(t, ivN.Contains(0))
	require.True(t, ivN.Contains(6))
	require.False(t, ivN.Contains(7))
}

// TestAnalyze_VariableCoupling: variables modified only by other
// variables reach no sink at all and count as constant.
func TestAnalyze_VariableCoupling(t *testing.T) {
	g, err := builder.FibonacciSwap()
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	res, err := monotone.Analyze(g)
	require.NoError(t, err)
	for _, v := range []string{"x", "y", "z"} {
		require.True(t, res.Nondecreasing(v), v)
		require.True(t, res.Nonincreasing(v), v)
	}

	// Free constants pin to [0,0]; the fixed one pins to its value.
	ivX, _ := res.Interval("x")
	require.Equal(t, monotone.Interval{Lo: 0, Hi: 0}, ivX)
	ivZ, _ := res.Interval("z")
	require.Equal(t, monotone.Interval{Lo: 0, Hi: 0}, ivZ)
}

// TestAnalyze_Diode: y moves both ways; z has only a conditional
// increment.
func TestAnalyze_Diode(t *testing.T) {
	g, err := builder.Diode()
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	res, err := monotone.Analyze(g)
	require.NoError(t, err)

	require.False(t, res.Nondecreasing("y"))
	require.False(t, res.Nonincreasing("y"))
	ivY, _ := res.Interval("y")
	require.Equal(t, monotone.Interval{Lo: math.MinInt64, Hi: math.MaxInt64}, ivY)

	require.True(t, res.Nondecreasing("z"))
	require.False(t, res.Nonincreasing("z"))
	ivZ, _ := res.Interval("z")
	require.EqualValues(t, 0, ivZ.Lo) // fixed nondecreasing: lo = fixed value
}

// TestAnalyze_Errors covers the sentinels.
func TestAnalyze_Errors(t *testing.T) {
	_, err := monotone.Analyze(nil)
	require.True(t, errors.Is(err, monotone.ErrGraphNil))

	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{Name: "i", Op: core.Initial{}}))
	require.NoError(t, g.AddNode(core.Node{Name: "t", Op: core.Terminal{}}))
	require.NoError(t, g.AddEdge("i", "t"))
	// Validate never ran.
	_, err = monotone.Analyze(g)
	require.True(t, errors.Is(err, monotone.ErrUnvalidatedGraph))
}
