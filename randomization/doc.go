// Package randomization implements a degree-interval switching Markov chain
// on simple undirected graphs.
//
// Every node u carries an interval [Lower(u), Upper(u)]. Starting from a graph
// whose degrees already respect the intervals, the chain repeatedly proposes
// one of three local moves and applies it only if the result is still simple
// and still respects every interval:
//
//	insert/delete(u,v)       toggle {u,v}
//	hinge flip(u,v,w)        remove {u,v}, add {v,w}   (deg u -1, deg w +1)
//	edge switch(s1,t1,s2,t2) {s1,t1},{s2,t2} → {s1,t2},{s2,t1}   (degrees fixed)
//
// Each attempt draws r ∈ [0,1) and picks a move type by the cumulative
// distribution (pID, pHF, pES); the remaining mass is a lazy step. Rejected
// proposals are counted, never returned as errors.
//
// Sampling strategies:
//
//	SampleSingleEdges    hinge-flip and edge-switch sources degree-weighted,
//	                     partners uniform among neighbors (default).
//	SampleSingleTuples   every participant uniform and independent.
//	SampleGlobalTuples   participants read from a shuffled permutation.
//
// Degree-weighted draws use a gonum distuv.Categorical over the upper
// bounds followed by acceptance with probability deg/upper.
//
// Separated wraps an engine and runs the three move types in consecutive
// blocks instead of interleaving them.
//
// Defaults (see New):
//
//	NumberOfSwitches  ceil(m · 10)
//	distribution      1/6, 1/6, 1/6 (lazy 1/2)
//	strategy          SampleSingleEdges
//	generator         PCG seeded with DefaultSeed
//	logger            zerolog.Nop()
//
// Errors (sentinel):
//
//	ErrInvalidArgument   wraps every constructor/setter rejection; the cause
//	                     is one of ErrTooFewNodes, ErrIntervalCount,
//	                     ErrMalformedInterval, ErrInfeasibleDegree.
//	ErrNilGraph          New(nil, ...).
//	ErrCancelled         Run stopped by its context.
//	ErrGraphMoved        Run after MoveGraph.
//
// An engine is a single-goroutine object: it owns its graph and generator.
package randomization
