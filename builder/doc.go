// Package builder provides seeded, reproducible generators that produce input
// graphs for the randomization chain and its autocorrelation analysis.
//
// The package follows a functional-options design:
//
//   - BuildGraph(n, opts, cons...) allocates a core.Graph with n nodes, resolves
//     a builderConfig from BuilderOption values and applies each Constructor in
//     order.
//   - Constructors validate their parameters early and return sentinel errors
//     wrapped with the constructor name ("ErdosRenyi: p=1.5 ...: builder:
//     probability out of range").
//   - Randomness flows only through the resolved config (WithSeed/WithRand);
//     there is no package-level generator.
//
// Constructors:
//
//	ErdosRenyi(p)            Gilbert G(n,p) via gonum's gen.Gnp.
//	Hyperbolic(k, gamma)     threshold random hyperbolic graph, average degree ≈ k,
//	                         power-law exponent gamma > 2.
//	Cycle()                  the cycle 0-1-...-(n-1)-0.
//	Matching()               the perfect matching {0,1},{2,3},...
//
// Determinism:
//
// For a fixed seed, node count and constructor list the produced graph is
// identical, including the neighbor slot order inside core.Graph (edges are
// inserted in ascending (u,v) order).
package builder
