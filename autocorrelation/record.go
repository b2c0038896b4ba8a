// SPDX-License-Identifier: MIT
//
// File: record.go
// Role: per-thinning result line and its text form.

package autocorrelation

import (
	"fmt"
	"io"
)

// Record summarizes one thinning.
type Record struct {
	Thinning           int
	ProcessedSnapshots int
	// SuccessfulSwitches sums the applied moves of every checkpoint up to
	// the last one this thinning processed.
	SuccessfulSwitches uint64
	Independent        int
	NonIndependent     int
	// Uncategorized counts possible edges never present in a processed
	// snapshot.
	Uncategorized int
	Seed          uint64
}

// String returns
// AUTOCORRELATION,<thinning>,<processed>,<successful>,<independent>,<non-independent>,<uncategorized>,<seed>.
func (r Record) String() string {
	return fmt.Sprintf("AUTOCORRELATION,%d,%d,%d,%d,%d,%d,%d",
		r.Thinning, r.ProcessedSnapshots, r.SuccessfulSwitches,
		r.Independent, r.NonIndependent, r.Uncategorized, r.Seed)
}

// IndependenceRate returns Independent / (Independent + NonIndependent),
// or 0 when no edge was categorized.
func (r Record) IndependenceRate() float64 {
	c := r.Independent + r.NonIndependent
	if c == 0 {
		return 0
	}

	return float64(r.Independent) / float64(c)
}

// WriteRecords writes one line per record.
func WriteRecords(w io.Writer, recs []Record) error {
	for _, r := range recs {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return fmt.Errorf("WriteRecords: thinning %d: %w", r.Thinning, err)
		}
	}

	return nil
}
