// Package gradation checks a sieve analysis against passing-percentage bands.
//
// Rows are computed in one pass over the sieves, coarsest first, carrying the
// cumulative retained weight. Reordering the sieves changes every later row.
package gradation

import (
	"fmt"
	"math"

	"Civilcalc/internal/numeric"
)

// Status of one sieve row against its band. StatusNone means no result.
type Status string

const (
	StatusNone Status = ""
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// CorruptPolicy decides what a NaN or infinite retained weight does to its row.
type CorruptPolicy string

const (
	// CorruptFail forces the row to 0 retained, 100 passing and Fail.
	CorruptFail CorruptPolicy = "fail"
	// CorruptZero reads the weight as missing, so the row follows the normal math.
	CorruptZero CorruptPolicy = "zero"
)

func (p CorruptPolicy) Valid() bool {
	return p == CorruptFail || p == CorruptZero
}

type SieveSpec struct {
	Size    string  `json:"size" yaml:"size"`
	PassMin float64 `json:"pass_min" yaml:"min"`
	PassMax float64 `json:"pass_max" yaml:"max"`
}

func (s SieveSpec) Validate() error {
	if s.Size == "" {
		return fmt.Errorf("sieve size is required")
	}
	if !numeric.Finite(s.PassMin) || !numeric.Finite(s.PassMax) {
		return fmt.Errorf("sieve %s: band must be finite", s.Size)
	}
	if s.PassMin < 0 || s.PassMax > 100 || s.PassMin > s.PassMax {
		return fmt.Errorf("sieve %s: band %.2f-%.2f must satisfy 0 <= min <= max <= 100", s.Size, s.PassMin, s.PassMax)
	}
	return nil
}

// Weights maps sieve size to retained weight in grams. Missing sizes retain nothing.
type Weights map[string]float64

type Row struct {
	Size                      string        `json:"size"`
	PassMin                   float64       `json:"pass_min"`
	PassMax                   float64       `json:"pass_max"`
	Retained                  numeric.Value `json:"retained"`
	PercentRetained           numeric.Value `json:"percent_retained"`
	CumulativePercentRetained numeric.Value `json:"cumulative_percent_retained"`
	PercentPassing            numeric.Value `json:"percent_passing"`
	Status                    Status        `json:"status"`
	Corrupt                   bool          `json:"corrupt,omitempty"`
}

// ValidTotal reports whether a sample total weight allows any computation.
func ValidTotal(total float64) bool {
	return numeric.Positive(total)
}

// Analyze computes one row per sieve in the given order. Without a valid total
// every row carries no result.
func Analyze(sieves []SieveSpec, weights Weights, total float64, policy CorruptPolicy) []Row {
	rows := make([]Row, len(sieves))
	for i, s := range sieves {
		rows[i] = Row{Size: s.Size, PassMin: s.PassMin, PassMax: s.PassMax}
	}
	if !ValidTotal(total) {
		return rows
	}

	var cumulative float64
	for i, s := range sieves {
		raw, present := weights[s.Size]
		if present && !numeric.Finite(raw) {
			if policy != CorruptZero {
				rows[i].Retained = numeric.Of(0)
				rows[i].PercentRetained = numeric.Of(0)
				rows[i].CumulativePercentRetained = numeric.Of(0)
				rows[i].PercentPassing = numeric.Of(100)
				rows[i].Status = StatusFail
				rows[i].Corrupt = true
				continue
			}
			raw = 0
		}
		retained := math.Max(0, raw)
		cumulative += retained

		cumPct := cumulative / total * 100
		pct := retained / total * 100
		if !numeric.Finite(cumPct) || !numeric.Finite(pct) {
			// Weights beyond float range leave this and every later row without a result.
			continue
		}
		passing := numeric.Clamp(100-cumPct, 0, 100)

		rows[i].Retained = numeric.Of(retained)
		rows[i].PercentRetained = numeric.Of(pct)
		rows[i].CumulativePercentRetained = numeric.Of(cumPct)
		rows[i].PercentPassing = numeric.Of(passing)
		rows[i].Status = status(passing, s)
	}
	return rows
}

func status(passing float64, s SieveSpec) Status {
	if passing >= s.PassMin && passing <= s.PassMax {
		return StatusPass
	}
	return StatusFail
}

// Rounded returns a copy of rows with every numeric field fixed to prec decimals.
// Status is left as computed from the unrounded values.
func Rounded(rows []Row, prec int) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		r.Retained = r.Retained.Round(prec)
		r.PercentRetained = r.PercentRetained.Round(prec)
		r.CumulativePercentRetained = r.CumulativePercentRetained.Round(prec)
		r.PercentPassing = r.PercentPassing.Round(prec)
		out[i] = r
	}
	return out
}

type Summary struct {
	Computed  bool `json:"computed"`
	Sieves    int  `json:"sieves"`
	Passed    int  `json:"passed"`
	Failed    int  `json:"failed"`
	Corrupt   int  `json:"corrupt"`
	Compliant bool `json:"compliant"`
}

func Summarize(rows []Row) Summary {
	s := Summary{Sieves: len(rows)}
	for _, r := range rows {
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		}
		if r.Corrupt {
			s.Corrupt++
		}
	}
	s.Computed = len(rows) > 0 && s.Passed+s.Failed == len(rows)
	s.Compliant = s.Computed && s.Failed == 0
	return s
}
