// SPDX-License-Identifier: MIT

package autocorrelation_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphmix/autocorrelation"
	"github.com/katalvlaran/graphmix/builder"
	"github.com/katalvlaran/graphmix/randomization"
)

func TestPairIndexBijection(t *testing.T) {
	for _, n := range []int{2, 3, 4, 10, 37} {
		p := autocorrelation.NewPairIndex(n)
		require.Equal(t, n*(n-1)/2, p.Len())
		next := 0
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				i := p.Index(u, v)
				require.Equal(t, next, i, "n=%d (%d,%d)", n, u, v)
				require.Equal(t, i, p.Index(v, u))
				gu, gv := p.Pair(i)
				require.Equal(t, [2]int{u, v}, [2]int{gu, gv})
				next++
			}
		}
	}
}

func TestPairIndexLargeN(t *testing.T) {
	p := autocorrelation.NewPairIndex(1 << 20)
	for _, i := range []int{0, 1, p.Len() / 3, p.Len() - 2, p.Len() - 1} {
		u, v := p.Pair(i)
		require.Less(t, u, v)
		require.Equal(t, i, p.Index(u, v))
	}
}

func TestTransitionCounter(t *testing.T) {
	var c autocorrelation.TransitionCounter
	c.Update(false, false)
	c.Update(false, true)
	c.Update(true, true)
	c.Update(true, true)
	require.Equal(t, autocorrelation.TransitionCounter{X00: 1, X01: 1, X11: 2}, c)
	require.Equal(t, 4.0, c.Sum())
	require.False(t, c.IsNone())

	hat := c.IndependentPrediction()
	require.InDelta(t, c.Sum(), hat.Sum(), 1e-12)
	require.InDelta(t, 0.5, hat.X00, 1e-12) // row0=2, col0=1
	require.InDelta(t, 1.5, hat.X01, 1e-12)

	none := autocorrelation.TransitionCounter{X00: 7}
	require.True(t, none.IsNone())

	independent := autocorrelation.TransitionCounter{X00: 3, X01: 3, X10: 3, X11: 3}
	require.Less(t, independent.DeltaBIC(), 0.0)
	sticky := autocorrelation.TransitionCounter{X00: 20, X11: 20}
	require.Greater(t, sticky.DeltaBIC(), 0.0)
}

func TestScheduleChainLength(t *testing.T) {
	s, err := autocorrelation.NewSchedule([]int{1, 2}, 50, 1<<30)
	require.NoError(t, err)
	require.Equal(t, 2, s.LCM)
	require.Equal(t, 100, s.MinChainLength)
	require.Len(t, s.Checkpoints, 100)
	require.Equal(t, 1, s.Checkpoints[0])
	require.Equal(t, 100, s.Checkpoints[99])

	// the largest thinning drives the length, regardless of order
	s, err = autocorrelation.NewSchedule([]int{6, 4}, 5, 1<<30)
	require.NoError(t, err)
	require.Equal(t, 12, s.LCM)
	require.Equal(t, 36, s.MinChainLength) // 12/6 = 2 per LCM, ceil(5/2) = 3
}

func TestScheduleMaxSnapshots(t *testing.T) {
	s, err := autocorrelation.NewSchedule([]int{1, 3}, 10, 5)
	require.NoError(t, err)
	require.Equal(t, 30, s.MinChainLength)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 9, 12, 15}, s.Checkpoints)
}

func TestScheduleRejects(t *testing.T) {
	cases := []struct {
		name     string
		th       []int
		min, max int
	}{
		{"no thinnings", nil, 10, 10},
		{"zero thinning", []int{1, 0}, 10, 10},
		{"zero min", []int{1}, 0, 10},
		{"zero max", []int{1}, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := autocorrelation.NewSchedule(tc.th, tc.min, tc.max)
			require.ErrorIs(t, err, autocorrelation.ErrInvalidArgument)
		})
	}
}

func TestRecordString(t *testing.T) {
	r := autocorrelation.Record{
		Thinning: 2, ProcessedSnapshots: 50, SuccessfulSwitches: 812,
		Independent: 30, NonIndependent: 10, Uncategorized: 5, Seed: 1,
	}
	require.Equal(t, "AUTOCORRELATION,2,50,812,30,10,5,1", r.String())
	require.InDelta(t, 0.75, r.IndependenceRate(), 1e-12)

	var buf bytes.Buffer
	require.NoError(t, autocorrelation.WriteRecords(&buf, []autocorrelation.Record{r, r}))
	require.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

// AnalysisSuite runs the analysis on a seeded G(10, 0.5) with intervals [deg, deg+5].
type AnalysisSuite struct {
	suite.Suite
	chain *randomization.Switching
}

func (s *AnalysisSuite) SetupTest() {
	g, err := builder.BuildGraph(10, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErdosRenyi(0.5))
	require.NoError(s.T(), err)
	require.Positive(s.T(), g.NumberOfEdges())
	sw, err := randomization.New(g, randomization.IntervalsAround(g, 0, 5),
		randomization.WithSwitchesPerEdge(1), randomization.WithSeed(1))
	require.NoError(s.T(), err)
	s.chain = sw
}

func (s *AnalysisSuite) TestTwoThinnings() {
	a, err := autocorrelation.New(s.chain, []int{1, 2},
		autocorrelation.WithMinSnapshots(50), autocorrelation.WithSeed(1))
	require.NoError(s.T(), err)

	recs, err := a.Run(context.Background())
	require.NoError(s.T(), err)
	require.Len(s.T(), recs, 2)

	for _, r := range recs {
		require.GreaterOrEqual(s.T(), r.ProcessedSnapshots, 50/r.Thinning)
		require.Equal(s.T(), 45, r.Independent+r.NonIndependent+r.Uncategorized)
		require.Equal(s.T(), uint64(1), r.Seed)
		require.Positive(s.T(), r.SuccessfulSwitches)
	}
	require.Equal(s.T(), 100, recs[0].ProcessedSnapshots)
	require.Equal(s.T(), 50, recs[1].ProcessedSnapshots)
	// both thinnings end at checkpoint 100
	require.Equal(s.T(), recs[0].SuccessfulSwitches, recs[1].SuccessfulSwitches)

	_, err = a.Run(context.Background())
	require.ErrorIs(s.T(), err, autocorrelation.ErrAlreadyRun)
}

func (s *AnalysisSuite) TestBudgetAndHook() {
	var gaps []uint64
	var done int
	a, err := autocorrelation.New(s.chain, []int{2, 3},
		autocorrelation.WithMinSnapshots(4),
		autocorrelation.WithSwitchesPerEdge(2),
		autocorrelation.WithBudget(func(gap, spe, m0 uint64) uint64 {
			gaps = append(gaps, gap)
			return autocorrelation.LinearBudget(gap, spe, m0)
		}),
		autocorrelation.WithSnapshotHook(func(d, total int) { done = d }))
	require.NoError(s.T(), err)

	sched := a.Schedule()
	recs, err := a.Run(context.Background())
	require.NoError(s.T(), err)
	require.Len(s.T(), recs, 2)
	require.Equal(s.T(), len(sched.Checkpoints), done)

	// gaps sum to the last checkpoint
	var sum uint64
	for _, g := range gaps {
		sum += g
	}
	require.Equal(s.T(), uint64(sched.Checkpoints[len(sched.Checkpoints)-1]), sum)
}

func (s *AnalysisSuite) TestMaxSnapshotsCapsProcessing() {
	a, err := autocorrelation.New(s.chain, []int{1, 3},
		autocorrelation.WithMinSnapshots(10), autocorrelation.WithMaxSnapshots(5))
	require.NoError(s.T(), err)

	recs, err := a.Run(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, recs[0].ProcessedSnapshots)
	require.Equal(s.T(), 5, recs[1].ProcessedSnapshots)
	require.LessOrEqual(s.T(), recs[0].SuccessfulSwitches, recs[1].SuccessfulSwitches)
}

func (s *AnalysisSuite) TestSeparatedChain() {
	sep, err := randomization.NewSeparated(s.chain.Graph(), s.chain.Intervals())
	require.NoError(s.T(), err)
	a, err := autocorrelation.New(sep, []int{1}, autocorrelation.WithMinSnapshots(10))
	require.NoError(s.T(), err)

	recs, err := a.Run(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, recs[0].ProcessedSnapshots)
}

func (s *AnalysisSuite) TestCancelled() {
	a, err := autocorrelation.New(s.chain, []int{1})
	require.NoError(s.T(), err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs, err := a.Run(ctx)
	require.Nil(s.T(), recs)
	require.ErrorIs(s.T(), err, randomization.ErrCancelled)
}

func (s *AnalysisSuite) TestNewRejects() {
	_, err := autocorrelation.New(s.chain, nil)
	require.ErrorIs(s.T(), err, autocorrelation.ErrInvalidArgument)
	_, err = autocorrelation.New(s.chain, []int{0})
	require.ErrorIs(s.T(), err, autocorrelation.ErrInvalidArgument)
	_, err = autocorrelation.New(s.chain, []int{1}, autocorrelation.WithMinSnapshots(0))
	require.ErrorIs(s.T(), err, autocorrelation.ErrInvalidArgument)
	_, err = autocorrelation.New(nil, []int{1})
	require.ErrorIs(s.T(), err, autocorrelation.ErrInvalidArgument)

	s.chain.MoveGraph()
	_, err = autocorrelation.New(s.chain, []int{1})
	require.ErrorIs(s.T(), err, autocorrelation.ErrInvalidArgument)
}

func TestAnalysisSuite(t *testing.T) {
	suite.Run(t, new(AnalysisSuite))
}
