// Package sieve serves gradation analyses against the grading catalog.
package sieve

import (
	"Civilcalc/internal/gradation"
	"Civilcalc/internal/grading"
	"Civilcalc/internal/numeric"
)

// Precision of every percentage and weight in a served analysis.
const Precision = 2

type Input struct {
	TotalWeight numeric.Raw    `json:"total_weight"`
	Retained    numeric.Fields `json:"retained"`
}

type Analysis struct {
	Table       grading.Table     `json:"table"`
	TotalWeight numeric.Value     `json:"total_weight"`
	Rows        []gradation.Row   `json:"rows"`
	Summary     gradation.Summary `json:"summary"`
}

// Analyze parses the raw form values and checks them against table.
func Analyze(table grading.Table, in Input) Analysis {
	total := gradation.ParseTotal(string(in.TotalWeight))
	rows := table.Analyze(gradation.ParseWeights(in.Retained), total)

	tw := numeric.None()
	if gradation.ValidTotal(total) {
		tw = numeric.Of(total).Round(Precision)
	}
	return Analysis{
		Table:       table,
		TotalWeight: tw,
		Rows:        gradation.Rounded(rows, Precision),
		Summary:     gradation.Summarize(rows),
	}
}
