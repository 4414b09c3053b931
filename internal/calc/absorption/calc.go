package absorption

import "Civilcalc/internal/numeric"

type Input struct {
	SSDGrams float64 `json:"ssd_g"`
	DryGrams float64 `json:"dry_g"`
}

type Result struct {
	AbsorptionPercent numeric.Value `json:"absorption_percent"`
	Notes             string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "ssd_g", Label: "Saturated surface-dry weight (A)", Unit: "g"},
	{Key: "dry_g", Label: "Oven-dry weight (B)", Unit: "g", Required: true},
}

func FromFields(f numeric.Fields) Input {
	return Input{SSDGrams: f.Float("ssd_g"), DryGrams: f.Float("dry_g")}
}

func Calculate(in Input) Result {
	b := numeric.Sanitize(in.DryGrams)
	if !numeric.Positive(b) {
		return Result{Notes: "Oven-dry weight must be greater than zero."}
	}
	a := numeric.Sanitize(in.SSDGrams)
	return Result{
		AbsorptionPercent: numeric.Div(a-b, b).Mul(100).Round(2),
		Notes:             "Water absorption of aggregate, 24 h soak.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "absorption_percent", Label: "Water absorption", Unit: "%", Value: r.AbsorptionPercent},
	}
}
