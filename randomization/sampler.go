// SPDX-License-Identifier: MIT
//
// File: sampler.go
// Role: participant sampling. One sampler per SamplingStrategy; each draws
// nodes with the engine's generator and hands them to a move primitive.

package randomization

// sampler draws the participants of one move and applies it.
// Each method reports whether the move was applied.
type sampler interface {
	insertDelete(s *Switching) bool
	hingeFlip(s *Switching) bool
	edgeSwitch(s *Switching) bool
}

// randomNode returns a node id drawn uniformly from [0,n).
func (s *Switching) randomNode() int {
	return s.rng.IntN(len(s.intervals))
}

// weightedNode returns a node id drawn proportionally to its degree.
// Candidates are drawn proportionally to their upper bound and accepted with
// probability deg/upper. The graph must have at least one edge.
//
// Expected trials: Σ upper / (2m).
func (s *Switching) weightedNode() int {
	for {
		u := int(s.weighted.Rand())
		upper := s.intervals[u].Upper
		if upper == 0 {
			continue
		}
		if s.rng.IntN(upper) < s.g.Degree(u) {
			return u
		}
	}
}

// randomNeighbor returns a uniformly chosen neighbor of u; ok is false when
// u is isolated.
func (s *Switching) randomNeighbor(u int) (v int, ok bool) {
	d := s.g.Degree(u)
	if d == 0 {
		return 0, false
	}
	v, err := s.g.IthNeighbor(u, s.rng.IntN(d))

	return v, err == nil
}

// singleEdges samples hinge flips and edge switches along existing edges:
// sources are degree-weighted and partners are uniform neighbors.
type singleEdges struct{}

func (singleEdges) insertDelete(s *Switching) bool {
	u := s.randomNode()
	v := s.randomNode()

	return s.tryInsertDelete(u, v)
}

func (singleEdges) hingeFlip(s *Switching) bool {
	if s.g.NumberOfEdges() == 0 {
		return false
	}
	u := s.weightedNode()
	w := s.randomNode()
	if u == w {
		return false
	}
	v, ok := s.randomNeighbor(u)
	if !ok {
		return false
	}

	return s.tryHingeFlip(u, v, w)
}

func (singleEdges) edgeSwitch(s *Switching) bool {
	if s.g.NumberOfEdges() == 0 {
		return false
	}
	s1 := s.weightedNode()
	s2 := s.weightedNode()
	t1, ok := s.randomNeighbor(s1)
	if !ok {
		return false
	}
	// early exit before spending a draw on t2
	if s2 == t1 || s.g.HasEdge(s2, t1) {
		return false
	}
	t2, ok := s.randomNeighbor(s2)
	if !ok {
		return false
	}

	return s.tryEdgeSwitch(s1, t1, s2, t2)
}

// singleTuples draws every participant uniformly and independently.
type singleTuples struct{}

func (singleTuples) insertDelete(s *Switching) bool {
	u := s.randomNode()
	v := s.randomNode()

	return s.tryInsertDelete(u, v)
}

func (singleTuples) hingeFlip(s *Switching) bool {
	u := s.randomNode()
	v := s.randomNode()
	w := s.randomNode()

	return s.tryHingeFlip(u, v, w)
}

func (singleTuples) edgeSwitch(s *Switching) bool {
	s1 := s.randomNode()
	s2 := s.randomNode()
	t1 := s.randomNode()
	t2 := s.randomNode()

	return s.tryEdgeSwitch(s1, t1, s2, t2)
}

// globalTuples reads participants from a permutation of all node ids.
// Participants of one move are therefore distinct. When fewer unread
// entries remain than a move needs, the permutation is reshuffled and the
// cursor reset. The cursor persists across runs.
type globalTuples struct {
	perm []int
	next int
}

// newGlobalTuples returns an exhausted reader so the first take shuffles.
func newGlobalTuples(n int) *globalTuples {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return &globalTuples{perm: perm, next: n}
}

// take returns the next k unread entries, reshuffling first if needed.
// The returned slice aliases the permutation and is valid until the next take.
func (gt *globalTuples) take(s *Switching, k int) []int {
	if len(gt.perm)-gt.next < k {
		s.rng.Shuffle(len(gt.perm), func(i, j int) {
			gt.perm[i], gt.perm[j] = gt.perm[j], gt.perm[i]
		})
		gt.next = 0
	}
	out := gt.perm[gt.next : gt.next+k]
	gt.next += k

	return out
}

func (gt *globalTuples) insertDelete(s *Switching) bool {
	p := gt.take(s, 2)

	return s.tryInsertDelete(p[0], p[1])
}

func (gt *globalTuples) hingeFlip(s *Switching) bool {
	p := gt.take(s, 3)

	return s.tryHingeFlip(p[0], p[1], p[2])
}

func (gt *globalTuples) edgeSwitch(s *Switching) bool {
	p := gt.take(s, 4)
	s1, s2, t1, t2 := p[0], p[1], p[2], p[3]

	return s.tryEdgeSwitch(s1, t1, s2, t2)
}
