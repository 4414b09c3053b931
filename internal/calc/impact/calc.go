package impact

import "Civilcalc/internal/numeric"

type Input struct {
	W1Grams float64 `json:"w1_g"`
	W2Grams float64 `json:"w2_g"`
}

type Result struct {
	ImpactPercent numeric.Value `json:"impact_percent"`
	Grade         string        `json:"grade"`
	Notes         string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "w1_g", Label: "Total weight of sample (W1)", Unit: "g", Required: true},
	{Key: "w2_g", Label: "Weight passing 2.36 mm sieve (W2)", Unit: "g"},
}

func FromFields(f numeric.Fields) Input {
	return Input{W1Grams: f.Float("w1_g"), W2Grams: f.Float("w2_g")}
}

func Calculate(in Input) Result {
	w1 := numeric.Sanitize(in.W1Grams)
	if !numeric.Positive(w1) {
		return Result{Notes: "Total sample weight must be greater than zero."}
	}
	aiv := numeric.Div(numeric.Sanitize(in.W2Grams), w1).Mul(100).Round(2)
	return Result{
		ImpactPercent: aiv,
		Grade:         Grade(aiv),
		Notes:         "Aggregate impact value test.",
	}
}

// Grade classifies toughness from the impact value.
func Grade(aiv numeric.Value) string {
	v, ok := aiv.Float()
	switch {
	case !ok:
		return ""
	case v < 10:
		return "exceptionally strong"
	case v <= 20:
		return "strong"
	case v <= 30:
		return "satisfactory for road surfacing"
	case v <= 35:
		return "satisfactory for bituminous macadam"
	default:
		return "weak for road surfacing"
	}
}

func (r Result) Quantities() []numeric.Quantity {
	out := []numeric.Quantity{
		{Key: "impact_percent", Label: "Aggregate impact value", Unit: "%", Value: r.ImpactPercent},
	}
	if r.Grade != "" {
		out = append(out, numeric.Quantity{Key: "grade", Label: "Toughness", Text: r.Grade})
	}
	return out
}
