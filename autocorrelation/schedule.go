// SPDX-License-Identifier: MIT
//
// File: schedule.go
// Role: checkpoints at which the chain is snapshotted.

package autocorrelation

import (
	"fmt"
	"math"
	"sort"
)

// Schedule lists the checkpoints, in units of one switching round, at which
// the analysis snapshots the chain.
type Schedule struct {
	// LCM is the least common multiple of all thinnings.
	LCM int
	// MinChainLength is the smallest multiple of LCM giving the largest
	// thinning at least minSnapshots snapshots.
	MinChainLength int
	// Checkpoints is the sorted, duplicate-free union over every thinning t
	// of {t, 2t, ...} up to MinChainLength, capped at maxSnapshots per thinning.
	Checkpoints []int
}

// NewSchedule computes the checkpoints for the given thinnings.
//
// Errors:
//   - ErrInvalidArgument if thinnings is empty, a thinning or minSnapshots
//     or maxSnapshots is < 1, or the LCM overflows int.
//
// Complexity: O(C log C) with C the number of checkpoints.
func NewSchedule(thinnings []int, minSnapshots, maxSnapshots int) (Schedule, error) {
	if len(thinnings) == 0 {
		return Schedule{}, fmt.Errorf("NewSchedule: no thinnings: %w", ErrInvalidArgument)
	}
	if minSnapshots < 1 || maxSnapshots < 1 {
		return Schedule{}, fmt.Errorf("NewSchedule: min=%d max=%d snapshots: %w",
			minSnapshots, maxSnapshots, ErrInvalidArgument)
	}

	l, tmax := 1, 0
	for _, t := range thinnings {
		if t < 1 {
			return Schedule{}, fmt.Errorf("NewSchedule: thinning %d: %w", t, ErrInvalidArgument)
		}
		step := t / gcd(l, t)
		if l > math.MaxInt/step {
			return Schedule{}, fmt.Errorf("NewSchedule: lcm of %v overflows: %w", thinnings, ErrInvalidArgument)
		}
		l *= step
		tmax = max(tmax, t)
	}

	perLCM := l / tmax // snapshots of the largest thinning per LCM
	rounds := (minSnapshots + perLCM - 1) / perLCM
	chain := max(l, rounds*l)

	seen := make(map[int]struct{})
	for _, t := range thinnings {
		for i := 0; i < chain/t && i < maxSnapshots; i++ {
			seen[(i+1)*t] = struct{}{}
		}
	}
	cps := make([]int, 0, len(seen))
	for cp := range seen {
		cps = append(cps, cp)
	}
	sort.Ints(cps)

	return Schedule{LCM: l, MinChainLength: chain, Checkpoints: cps}, nil
}

// lastCheckpoint returns the index in Checkpoints of the last checkpoint
// thinning t consumes: walking in order, t takes t, 2t, 3t, ... until
// maxSnapshots are taken. It returns -1 if t takes none.
func (s Schedule) lastCheckpoint(t, maxSnapshots int) int {
	last, taken := -1, 0
	for i, cp := range s.Checkpoints {
		if taken >= maxSnapshots {
			break
		}
		if cp == (taken+1)*t {
			last = i
			taken++
		}
	}

	return last
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
