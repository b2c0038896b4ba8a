// SPDX-License-Identifier: MIT
//
// File: transition.go
// Role: 2x2 transition table of one possible edge and its delta-BIC score.

package autocorrelation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TransitionCounter counts the transitions of one possible edge between
// consecutive snapshots: Xab is the number of times the edge went from
// state a to state b (0 absent, 1 present).
type TransitionCounter struct {
	X00, X01, X10, X11 float64
}

// Update records the transition prev → next.
func (c *TransitionCounter) Update(prev, next bool) {
	switch {
	case !prev && !next:
		c.X00++
	case !prev && next:
		c.X01++
	case prev && !next:
		c.X10++
	default:
		c.X11++
	}
}

// cells returns the table in row-major order.
func (c TransitionCounter) cells() []float64 {
	return []float64{c.X00, c.X01, c.X10, c.X11}
}

// Sum returns the number of recorded transitions.
func (c TransitionCounter) Sum() float64 {
	return floats.Sum(c.cells())
}

// IndependentPrediction returns the table expected if next did not depend
// on prev: row total × column total / Sum for every cell.
// All cells are NaN when Sum is zero.
func (c TransitionCounter) IndependentPrediction() TransitionCounter {
	sum := c.Sum()
	row0, row1 := c.X00+c.X01, c.X10+c.X11
	col0, col1 := c.X00+c.X10, c.X01+c.X11

	return TransitionCounter{
		X00: row0 * col0 / sum,
		X01: row0 * col1 / sum,
		X10: row1 * col0 / sum,
		X11: row1 * col1 / sum,
	}
}

// DeltaBIC returns −2·Σ x·ln(x̂/x) − ln(Sum), with x̂ the independent
// prediction and empty cells contributing 0. A negative value favors the
// independent model.
func (c TransitionCounter) DeltaBIC() float64 {
	x := c.cells()
	hat := c.IndependentPrediction().cells()
	g2 := 0.0
	for k, xk := range x {
		if xk != 0 {
			g2 += xk * math.Log(hat[k]/xk)
		}
	}

	return -2*g2 - math.Log(floats.Sum(x))
}

// IsNone reports whether the edge was absent in every observed snapshot.
// Such edges carry no information and are left uncategorized.
func (c TransitionCounter) IsNone() bool {
	return c.X00 == c.Sum()
}
