// SPDX-License-Identifier: MIT
// Package builder_test verifies constructor contracts and seeded determinism.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmix/builder"
	"github.com/katalvlaran/graphmix/core"
)

// requireSimple asserts symmetric, loop-free adjacency consistent with the edge count.
func requireSimple(t *testing.T, g *core.Graph) {
	t.Helper()
	sum := 0
	for u := 0; u < g.NumberOfNodes(); u++ {
		require.False(t, g.HasEdge(u, u))
		for _, v := range g.Neighbors(u) {
			require.True(t, g.HasEdge(v, u))
		}
		sum += g.Degree(u)
	}
	require.Equal(t, 2*g.NumberOfEdges(), sum)
}

func TestErdosRenyiExtremes(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, builder.ErdosRenyi(0))
	require.NoError(t, err)
	require.Equal(t, 0, g.NumberOfEdges())

	g, err = builder.BuildGraph(6, nil, builder.ErdosRenyi(1))
	require.NoError(t, err)
	require.Equal(t, 15, g.NumberOfEdges())
	requireSimple(t, g)
}

func TestErdosRenyiValidation(t *testing.T) {
	cases := []struct {
		name string
		n    int
		p    float64
		opts []builder.BuilderOption
		want error
	}{
		{"empty", 0, 0.5, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"negative p", 5, -0.1, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"p above one", 5, 1.5, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"no rng", 5, 0.5, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.n, tc.opts, builder.ErdosRenyi(tc.p))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestErdosRenyiSeeded(t *testing.T) {
	a, err := builder.BuildGraph(60, []builder.BuilderOption{builder.WithSeed(7)}, builder.ErdosRenyi(0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph(60, []builder.BuilderOption{builder.WithSeed(7)}, builder.ErdosRenyi(0.2))
	require.NoError(t, err)

	requireSimple(t, a)
	require.Equal(t, a.Edges(), b.Edges())
	for u := 0; u < a.NumberOfNodes(); u++ {
		require.Equal(t, a.Neighbors(u), b.Neighbors(u), "slot order of node %d", u)
	}
	// 1770 pairs at p=0.2: expect ~354 edges
	require.InDelta(t, 354, a.NumberOfEdges(), 120)
}

func TestHyperbolic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3)}
	a, err := builder.BuildGraph(200, opts, builder.Hyperbolic(8, 3))
	require.NoError(t, err)
	b, err := builder.BuildGraph(200, []builder.BuilderOption{builder.WithSeed(3)}, builder.Hyperbolic(8, 3))
	require.NoError(t, err)

	requireSimple(t, a)
	require.Equal(t, a.Edges(), b.Edges())
	require.Positive(t, a.NumberOfEdges())
}

func TestHyperbolicValidation(t *testing.T) {
	seed := []builder.BuilderOption{builder.WithSeed(1)}

	_, err := builder.BuildGraph(1, seed, builder.Hyperbolic(1, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(10, seed, builder.Hyperbolic(0, 3))
	require.ErrorIs(t, err, builder.ErrInvalidDegree)
	_, err = builder.BuildGraph(10, seed, builder.Hyperbolic(9, 3))
	require.ErrorIs(t, err, builder.ErrInvalidDegree)
	_, err = builder.BuildGraph(10, seed, builder.Hyperbolic(3, 2))
	require.ErrorIs(t, err, builder.ErrInvalidExponent)
	_, err = builder.BuildGraph(10, nil, builder.Hyperbolic(3, 3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestCycleAndMatching(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Cycle())
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2, 2, 2}, g.Degrees())

	g, err = builder.BuildGraph(5, nil, builder.Matching())
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}}, g.Edges())

	_, err = builder.BuildGraph(2, nil, builder.Cycle())
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	// a second constructor hitting an existing edge surfaces core's sentinel
	_, err = builder.BuildGraph(4, nil, builder.Cycle(), builder.Matching())
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestBuildGraphNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(4, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
