// SPDX-License-Identifier: MIT

package randomization

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphmix/core"
)

// path4 is the path 0-1-2-3 with the given intervals.
func path4(t *testing.T, iv []DegreeInterval) *Switching {
	t.Helper()
	g, err := core.FromEdges(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)
	s, err := New(g, iv, WithSeed(2))
	require.NoError(t, err)

	return s
}

func TestInsertRejectedAtUpperBound(t *testing.T) {
	// node 1 is saturated at degree 2
	s := path4(t, []DegreeInterval{{0, 3}, {0, 2}, {0, 3}, {0, 3}})
	before := s.g.Edges()

	require.False(t, s.tryInsertDelete(1, 3))
	require.Equal(t, before, s.g.Edges())
	require.Equal(t, uint64(1), s.stats.AttemptedInsertions)
	require.Zero(t, s.stats.SuccessfulInsertions)

	require.True(t, s.tryInsertDelete(0, 3))
	require.True(t, s.g.HasEdge(0, 3))
	require.Equal(t, uint64(1), s.stats.SuccessfulInsertions)
}

func TestDeleteRejectedAtLowerBound(t *testing.T) {
	s := path4(t, []DegreeInterval{{1, 3}, {1, 3}, {1, 3}, {1, 3}})

	// 0 has degree 1 = lower
	require.False(t, s.tryInsertDelete(0, 1))
	require.True(t, s.g.HasEdge(0, 1))
	// 1 and 2 have degree 2 > lower
	require.True(t, s.tryInsertDelete(2, 1))
	require.False(t, s.g.HasEdge(1, 2))
	require.Equal(t, uint64(2), s.stats.AttemptedDeletions)
	require.Equal(t, uint64(1), s.stats.SuccessfulDeletions)

	require.False(t, s.tryInsertDelete(2, 2))
	require.Equal(t, uint64(2), s.stats.AttemptedDeletions+s.stats.AttemptedInsertions)
}

func TestHingeFlip(t *testing.T) {
	s := path4(t, []DegreeInterval{{0, 3}, {0, 3}, {0, 3}, {0, 3}})

	require.False(t, s.tryHingeFlip(0, 1, 1), "participants must be distinct")
	require.False(t, s.tryHingeFlip(0, 2, 3), "{u,v} must exist")
	require.False(t, s.tryHingeFlip(3, 2, 1), "{v,w} must be absent")

	// {1,2} moves to {2,0}
	require.True(t, s.tryHingeFlip(1, 2, 0))
	require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 2, V: 3}}, s.g.Edges())
	require.Equal(t, []int{2, 1, 2, 1}, s.g.Degrees())

	tight := path4(t, []DegreeInterval{{0, 1}, {2, 2}, {0, 2}, {0, 1}})
	require.False(t, tight.tryHingeFlip(1, 2, 0), "u at lower bound")
	require.False(t, tight.tryHingeFlip(2, 1, 3), "w at upper bound")
}

func TestEdgeSwitch(t *testing.T) {
	s := path4(t, []DegreeInterval{{1, 2}, {1, 2}, {1, 2}, {1, 2}})

	require.False(t, s.tryEdgeSwitch(0, 1, 2, 1), "t1 == t2")
	require.False(t, s.tryEdgeSwitch(1, 2, 0, 1), "s1 == t2")
	require.False(t, s.tryEdgeSwitch(0, 1, 2, 3), "{s2,t1} = {2,1} already exists")
	require.False(t, s.tryEdgeSwitch(0, 2, 3, 1), "source edges must exist")
	require.True(t, s.tryEdgeSwitch(0, 1, 3, 2))
	require.Equal(t, []core.Edge{{U: 0, V: 2}, {U: 1, V: 2}, {U: 1, V: 3}}, s.g.Edges())
	require.Equal(t, []int{1, 2, 2, 1}, s.g.Degrees())
}

func TestWeightedNodeFollowsDegree(t *testing.T) {
	// star around 0 plus an isolated node 4
	g, err := core.FromEdges(5, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}})
	require.NoError(t, err)
	iv := []DegreeInterval{{0, 4}, {0, 4}, {0, 4}, {0, 4}, {0, 4}}
	s, err := New(g, iv, WithSeed(8))
	require.NoError(t, err)

	hits := make([]int, 5)
	const draws = 6000
	for i := 0; i < draws; i++ {
		hits[s.weightedNode()]++
	}
	require.Zero(t, hits[4])
	// degree 3 of 6 endpoint slots
	require.InDelta(t, draws/2, hits[0], draws/10)
}

func TestGlobalTuplesDistinctAndPersistent(t *testing.T) {
	s := path4(t, []DegreeInterval{{0, 3}, {0, 3}, {0, 3}, {0, 3}})
	require.NoError(t, s.SetSamplingStrategy(SampleGlobalTuples))
	gt := s.global

	p := append([]int(nil), gt.take(s, 3)...)
	require.Len(t, p, 3)
	require.NotEqual(t, p[0], p[1])
	require.NotEqual(t, p[1], p[2])
	require.NotEqual(t, p[0], p[2])
	require.Equal(t, 3, gt.next)

	// one unread entry left: a pair forces a reshuffle
	q := gt.take(s, 2)
	require.NotEqual(t, q[0], q[1])
	require.Equal(t, 2, gt.next)

	// switching away and back keeps the cursor
	require.NoError(t, s.SetSamplingStrategy(SampleSingleTuples))
	require.NoError(t, s.SetSamplingStrategy(SampleGlobalTuples))
	require.Same(t, gt, s.global)
	require.Equal(t, 2, s.global.next)
}
