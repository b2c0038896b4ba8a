// Package autocorrelation estimates how many switching rounds separate
// statistically independent samples of a randomization chain.
//
// Every possible edge {u,v} of the n-node graph is tracked as a binary time
// series over chain snapshots. For a thinning t the series is subsampled
// every t rounds and its 2x2 transition table (absent/present → absent/
// present) is compared, by the difference in Bayesian information criterion,
// against the table an independent process would produce:
//
//	ΔBIC = −2·Σ x·ln(x̂/x) − ln(Σ x)
//
// ΔBIC < 0 favors independence. Edges never present are uncategorized.
//
// One switching round equals switchesPerEdge · m₀ attempts, m₀ being the
// edge count of the starting graph (see WithBudget).
//
// Building blocks:
//
//	PairIndex          possible edge ↔ [0, n(n−1)/2)
//	TransitionCounter  transition table and ΔBIC of one possible edge
//	Schedule           checkpoints shared by all thinnings
//	Analysis           drives a Chain and emits one Record per thinning
//
// Snapshots are stored as soniakeys/bits bitsets over the pair index, so the
// memory cost is one bit plus one 32-byte counter per possible edge and
// thinning.
//
// Errors (sentinel):
//
//	ErrInvalidArgument  bad thinnings, snapshot bounds or chain.
//	ErrAlreadyRun       Analysis.Run called twice.
package autocorrelation
