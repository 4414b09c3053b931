package abrasion

import "Civilcalc/internal/numeric"

type Input struct {
	W1Grams float64 `json:"w1_g"`
	W2Grams float64 `json:"w2_g"`
}

type Result struct {
	AbrasionPercent numeric.Value `json:"abrasion_percent"`
	Notes           string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "w1_g", Label: "Original weight of sample (W1)", Unit: "g", Required: true},
	{Key: "w2_g", Label: "Weight retained on 1.70 mm sieve (W2)", Unit: "g"},
}

func FromFields(f numeric.Fields) Input {
	return Input{W1Grams: f.Float("w1_g"), W2Grams: f.Float("w2_g")}
}

// Calculate returns the Los Angeles abrasion value (W1-W2)/W1 x 100.
func Calculate(in Input) Result {
	w1 := numeric.Sanitize(in.W1Grams)
	if !numeric.Positive(w1) {
		return Result{Notes: "Original sample weight must be greater than zero."}
	}
	w2 := numeric.Sanitize(in.W2Grams)
	return Result{
		AbrasionPercent: numeric.Div(w1-w2, w1).Mul(100).Round(2),
		Notes:           "Los Angeles abrasion test.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "abrasion_percent", Label: "Aggregate abrasion value", Unit: "%", Value: r.AbrasionPercent},
	}
}
