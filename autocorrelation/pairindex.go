// SPDX-License-Identifier: MIT
//
// File: pairindex.go
// Role: bijection between unordered node pairs and [0, n(n-1)/2).

package autocorrelation

import "math"

// PairIndex numbers the unordered pairs {u,v}, u≠v, of n nodes row by row:
// (0,1)=0, (0,2)=1, ..., (0,n-1)=n-2, (1,2)=n-1, ...
type PairIndex struct {
	n int
}

// NewPairIndex returns the index over n nodes. A negative n counts as zero.
func NewPairIndex(n int) PairIndex {
	return PairIndex{n: max(n, 0)}
}

// Len returns the number of possible edges n(n-1)/2.
func (p PairIndex) Len() int {
	return p.n * (p.n - 1) / 2
}

// Index returns the position of {u,v}. The pair may be given in either order;
// u ≠ v and both in [0,n) are the caller's responsibility.
// Complexity: O(1)
func (p PairIndex) Index(u, v int) int {
	if u > v {
		u, v = v, u
	}

	return p.rowStart(u) + v - u - 1
}

// Pair returns the pair (u,v), u < v, stored at position i ∈ [0,Len()).
// Complexity: O(1)
func (p PairIndex) Pair(i int) (u, v int) {
	n := p.n
	d := float64(-8*i + 4*n*(n-1) - 7)
	u = n - 2 - int(math.Floor(math.Sqrt(d)/2-0.5))
	// the square root may be off by one ulp for very large n
	for u > 0 && p.rowStart(u) > i {
		u--
	}
	for u < n-2 && p.rowStart(u+1) <= i {
		u++
	}
	v = i + u + 1 - p.rowStart(u)

	return u, v
}

// rowStart returns the index of (u,u+1).
func (p PairIndex) rowStart(u int) int {
	return p.Len() - (p.n-u)*(p.n-u-1)/2
}
