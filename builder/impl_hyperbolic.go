// SPDX-License-Identifier: MIT
// Package: graphmix/builder
//
// impl_hyperbolic.go - threshold random hyperbolic graph constructor.
//
// Model (Krioukov et al., temperature 0):
//   - Each node gets polar coordinates (r, θ) in a hyperbolic disk of radius R.
//     θ ~ U[0, 2π); r has density α·sinh(αr)/(cosh(αR)−1), sampled by inversion.
//   - α = (γ−1)/2 ties the radial density to the degree exponent γ.
//   - R = 2·ln(2·n·ξ²/(π·k)) with ξ = α/(α−½) targets average degree k.
//   - {u,v} is an edge iff the hyperbolic distance is at most R.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 < k < n−1 (else ErrInvalidDegree); γ > 2 (else ErrInvalidExponent).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) distance tests; Space: O(n) coordinates.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/graphmix/core"
)

const (
	minHyperbolicNodes = 2
	minExponent        = 2.0
)

// Hyperbolic returns a Constructor sampling a random hyperbolic graph over the
// nodes of g with target average degree avgDeg and degree exponent gamma.
func Hyperbolic(avgDeg, gamma float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NumberOfNodes()
		if n < minHyperbolicNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodHyperbolic, n, minHyperbolicNodes, ErrTooFewVertices)
		}
		if !(avgDeg > 0) || avgDeg >= float64(n-1) {
			return fmt.Errorf("%s: k=%g not in (0,%d): %w", MethodHyperbolic, avgDeg, n-1, ErrInvalidDegree)
		}
		if !(gamma > minExponent) {
			return fmt.Errorf("%s: gamma=%g: %w", MethodHyperbolic, gamma, ErrInvalidExponent)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodHyperbolic, ErrNeedRandSource)
		}

		alpha := (gamma - 1) / 2
		radius := hyperbolicRadius(n, avgDeg, alpha)

		angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: cfg.rng}
		unit := distuv.Uniform{Min: 0, Max: 1, Src: cfg.rng}
		theta := make([]float64, n)
		coshR := make([]float64, n)
		sinhR := make([]float64, n)
		spread := math.Cosh(alpha*radius) - 1
		for u := 0; u < n; u++ {
			theta[u] = angle.Rand()
			r := math.Acosh(1+spread*unit.Rand()) / alpha
			coshR[u] = math.Cosh(r)
			sinhR[u] = math.Sinh(r)
		}

		// d(u,v) ≤ R  ⇔  cosh r_u cosh r_v − sinh r_u sinh r_v cos Δθ ≤ cosh R.
		threshold := math.Cosh(radius)
		var edges []core.Edge
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				dist := coshR[u]*coshR[v] - sinhR[u]*sinhR[v]*math.Cos(theta[u]-theta[v])
				if dist <= threshold {
					edges = append(edges, core.Edge{U: u, V: v})
				}
			}
		}

		return addSorted(MethodHyperbolic, g, edges)
	}
}

// hyperbolicRadius returns the disk radius targeting average degree k.
// The radius is clamped to stay positive for dense targets.
func hyperbolicRadius(n int, k, alpha float64) float64 {
	xi := alpha / (alpha - 0.5)
	r := 2 * math.Log(2*float64(n)*xi*xi/(math.Pi*k))
	if r < 1e-3 {
		r = 1e-3
	}

	return r
}
