package registry

import (
	"errors"

	"Civilcalc/internal/numeric"
)

// TrialsOutput holds parallel trials of one calculator and their means.
type TrialsOutput struct {
	Calculator string             `json:"calculator"`
	Trials     []Output           `json:"trials"`
	Mean       []numeric.Quantity `json:"mean"`
	Defined    map[string]int     `json:"defined"`
}

// EvaluateTrials evaluates every trial and averages each numeric output over the
// trials that produced a result for it.
func EvaluateTrials(id string, trials []numeric.Fields) (TrialsOutput, error) {
	c, ok := Lookup(id)
	if !ok {
		return TrialsOutput{}, ErrUnknownCalculator{ID: id}
	}
	if len(trials) == 0 {
		return TrialsOutput{}, errors.New("no trials")
	}
	out := TrialsOutput{Calculator: c.ID, Trials: make([]Output, 0, len(trials))}
	for _, fields := range trials {
		out.Trials = append(out.Trials, c.Evaluate(fields))
	}
	out.Mean, out.Defined = means(out.Trials)
	return out, nil
}

func means(trials []Output) ([]numeric.Quantity, map[string]int) {
	var order []numeric.Quantity
	values := map[string][]numeric.Value{}
	text := map[string]bool{}
	for _, t := range trials {
		for _, q := range t.Results {
			if q.Text != "" {
				text[q.Key] = true
			}
			if _, seen := values[q.Key]; !seen {
				order = append(order, numeric.Quantity{Key: q.Key, Label: q.Label, Unit: q.Unit})
				values[q.Key] = nil
			}
			values[q.Key] = append(values[q.Key], q.Value)
		}
	}

	var out []numeric.Quantity
	defined := map[string]int{}
	for _, q := range order {
		if text[q.Key] {
			continue
		}
		prec := -1
		for _, v := range values[q.Key] {
			if v.Defined() {
				defined[q.Key]++
				if prec < 0 {
					prec = v.Precision()
				}
			}
		}
		q.Value = numeric.Mean(values[q.Key]).Round(prec)
		out = append(out, q)
	}
	return out, defined
}
