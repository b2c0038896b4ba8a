// Package graphmix randomizes simple undirected graphs under per-node degree
// intervals and measures how fast the resulting Markov chain forgets its
// starting point.
//
// 🚀 What is graphmix?
//
//	A small library plus a command line tool that brings together:
//		• Core primitives: a simple undirected graph with O(1) edge lookup
//		• Generators: Gilbert G(n,p), random hyperbolic, cycle, perfect matching
//		• Randomization: the degree-interval switching chain with
//		  insertion/deletion, hinge flip and edge switch moves
//		• Autocorrelation: per-thinning independence test of every possible
//		  edge via a delta-BIC score on 2×2 transition tables
//
// Under the hood, everything is organized under these subpackages:
//
//	core/              Graph with adjacency lists and a hashed edge set
//	builder/           seeded graph constructors
//	randomization/     Switching and Separated chains, samplers, statistics
//	autocorrelation/   PairIndex, TransitionCounter, Schedule, Analysis
//	config/            viper-backed run configuration and zerolog logger
//	cmd/autocorr/      the experiment driver
//
// Quick ASCII example of an edge switch on {a,b},{c,d}:
//
//	a───b        a   b
//	         ⇒   │   │
//	c───d        c   d
//
// Every node keeps its degree; the chain only accepts moves that keep each
// degree inside its interval.
//
//	go install github.com/katalvlaran/graphmix/cmd/autocorr@latest
package graphmix
