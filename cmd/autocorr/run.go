package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/katalvlaran/graphmix/autocorrelation"
	"github.com/katalvlaran/graphmix/builder"
	"github.com/katalvlaran/graphmix/config"
	"github.com/katalvlaran/graphmix/core"
	"github.com/katalvlaran/graphmix/randomization"
)

// algorithm selects the sampling strategy and whether move types run in
// separate phases.
type algorithm struct {
	label     string
	strategy  randomization.SamplingStrategy
	separated bool
}

var algorithms = map[int]algorithm{
	1: {"dis-single-edges", randomization.SampleSingleEdges, false},
	2: {"dis-single-edges-s", randomization.SampleSingleEdges, true},
	3: {"dis-single-tuples", randomization.SampleSingleTuples, false},
	4: {"dis-single-tuples-s", randomization.SampleSingleTuples, true},
	5: {"dis-global-tuples", randomization.SampleGlobalTuples, false},
	6: {"dis-global-tuples-s", randomization.SampleGlobalTuples, true},
}

// graphType names a generator; construct reads its parameters from cfg.
type graphType struct {
	label     string
	construct func(cfg *config.Config) builder.Constructor
}

var graphTypes = map[int]graphType{
	1: {"gilbert", func(cfg *config.Config) builder.Constructor {
		return builder.ErdosRenyi(cfg.EdgeProb())
	}},
	2: {"hyperbolic", func(cfg *config.Config) builder.Constructor {
		return builder.Hyperbolic(cfg.AvgDegree(), cfg.DegreeExp())
	}},
}

// tunableChain is a chain whose move distribution and sampler can be set.
type tunableChain interface {
	autocorrelation.Chain
	SetSwitchingTypeDistribution(insertDelete, hingeFlip, edgeSwitch float64) error
	SetSamplingStrategy(s randomization.SamplingStrategy) error
}

// Seed streams derived from a run seed.
const (
	streamGraph = iota
	streamChain
)

// runExperiment performs cfg.Runs() independent runs and logs the mean and
// standard deviation of the independence rate per thinning.
func runExperiment(ctx context.Context, cfg *config.Config, log zerolog.Logger, algo algorithm, gt graphType, nodes int) error {
	algoLabel := cfg.AlgoLabel()
	if algoLabel == "" {
		algoLabel = algo.label
	}
	graphLabel := cfg.GraphLabel()
	if graphLabel == "" {
		graphLabel = gt.label
	}

	var pg *mpb.Progress
	if cfg.EnableProgress() {
		pg = mpb.New(mpb.WithWidth(64), mpb.WithOutput(os.Stderr))
	}

	rates := make(map[int][]float64)
	var err error
	for run := 0; run < cfg.Runs(); run++ {
		var recs []autocorrelation.Record
		recs, err = runOnce(ctx, cfg, log, pg, algo, gt, nodes, run, algoLabel, graphLabel)
		if err != nil {
			err = fmt.Errorf("run %d: %w", run, err)
			break
		}
		for _, r := range recs {
			rates[r.Thinning] = append(rates[r.Thinning], r.IndependenceRate())
		}
	}
	if pg != nil {
		pg.Wait()
	}
	if err != nil {
		return err
	}

	logSummary(log, rates)

	return nil
}

// runOnce generates one graph, analyses the chain on it and writes the records.
func runOnce(ctx context.Context, cfg *config.Config, log zerolog.Logger, pg *mpb.Progress,
	algo algorithm, gt graphType, nodes, run int, algoLabel, graphLabel string,
) ([]autocorrelation.Record, error) {
	seed := randomization.DeriveSeed(cfg.Seed(), uint64(run))

	g, err := builder.BuildGraph(nodes,
		[]builder.BuilderOption{builder.WithSeed(randomization.DeriveSeed(seed, streamGraph))},
		gt.construct(cfg))
	if err != nil {
		return nil, fmt.Errorf("generate %s graph: %w", gt.label, err)
	}

	chain, err := newChain(g, cfg, log, algo, randomization.DeriveSeed(seed, streamChain))
	if err != nil {
		return nil, err
	}

	var bar *mpb.Bar
	opts := []autocorrelation.Option{
		autocorrelation.WithMinSnapshots(cfg.MinSnapshots()),
		autocorrelation.WithSwitchesPerEdge(cfg.SwitchesPerEdge()),
		autocorrelation.WithSeed(seed),
		autocorrelation.WithLogger(log),
		autocorrelation.WithLabels(algoLabel, graphLabel),
		autocorrelation.WithSnapshotHook(func(int, int) {
			if bar != nil {
				bar.Increment()
			}
		}),
	}
	if k := cfg.MaxSnapshots(); k > 0 {
		opts = append(opts, autocorrelation.WithMaxSnapshots(k))
	}
	analysis, err := autocorrelation.New(chain, cfg.Thinnings(), opts...)
	if err != nil {
		return nil, fmt.Errorf("prepare analysis: %w", err)
	}
	if pg != nil {
		bar = newBar(pg, fmt.Sprintf("run %d", run), len(analysis.Schedule().Checkpoints))
	}

	recs, err := analysis.Run(ctx)
	if err != nil {
		if bar != nil {
			bar.Abort(false)
		}
		return nil, fmt.Errorf("analysis: %w", err)
	}

	path := fmt.Sprintf("%s-%s-%s-%d.out", cfg.Prefix(), algoLabel, graphLabel, run)
	if err := writeRecordFile(path, recs); err != nil {
		return nil, err
	}
	log.Info().Str("file", path).Int("records", len(recs)).Uint64("seed", seed).Msg("run written")

	return recs, nil
}

// newChain builds the switching engine for algo on g.
func newChain(g *core.Graph, cfg *config.Config, log zerolog.Logger, algo algorithm, seed uint64) (tunableChain, error) {
	intervals := randomization.IntervalsAround(g, 0, cfg.UpperSlack())
	sw, err := randomization.New(g, intervals,
		randomization.WithSwitchesPerEdge(1),
		randomization.WithSeed(seed),
		randomization.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("build chain: %w", err)
	}

	var chain tunableChain = sw
	if algo.separated {
		chain = &randomization.Separated{Switching: sw}
	}
	if err := chain.SetSwitchingTypeDistribution(cfg.IDProb(), cfg.HFProb(), cfg.ESProb()); err != nil {
		return nil, fmt.Errorf("build chain: %w", err)
	}
	if err := chain.SetSamplingStrategy(algo.strategy); err != nil {
		return nil, fmt.Errorf("build chain: %w", err)
	}

	return chain, nil
}

// newBar adds a progress bar counting the checkpoints of one run.
func newBar(pg *mpb.Progress, name string, total int) *mpb.Bar {
	return pg.New(int64(total),
		mpb.BarStyle().Lbound("╢").Filler("▌").Tip("▌").Padding("░").Rbound("╟"),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight}),
			decor.OnComplete(
				decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 4}), "done",
			),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
}

func writeRecordFile(path string, recs []autocorrelation.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return autocorrelation.WriteRecords(f, recs)
}

// logSummary logs mean and standard deviation of the independence rate
// per thinning across runs.
func logSummary(log zerolog.Logger, rates map[int][]float64) {
	thinnings := make([]int, 0, len(rates))
	for t := range rates {
		thinnings = append(thinnings, t)
	}
	sort.Ints(thinnings)

	for _, t := range thinnings {
		mean, err := stats.Mean(rates[t])
		if err != nil {
			continue
		}
		sd, _ := stats.StandardDeviation(rates[t])
		log.Info().
			Int("thinning", t).
			Int("runs", len(rates[t])).
			Float64("independent_mean", mean).
			Float64("independent_sd", sd).
			Msg("summary")
	}
}
