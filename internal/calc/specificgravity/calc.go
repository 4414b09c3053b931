package specificgravity

import "Civilcalc/internal/numeric"

// Input holds the four pycnometer weighings in grams.
type Input struct {
	M1 float64 `json:"m1"` // empty pycnometer
	M2 float64 `json:"m2"` // pycnometer + dry soil
	M3 float64 `json:"m3"` // pycnometer + soil + water
	M4 float64 `json:"m4"` // pycnometer + water
}

type Result struct {
	SpecificGravity numeric.Value `json:"specific_gravity"`
	Notes           string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "m1", Label: "Empty pycnometer (M1)", Unit: "g"},
	{Key: "m2", Label: "Pycnometer + dry soil (M2)", Unit: "g"},
	{Key: "m3", Label: "Pycnometer + soil + water (M3)", Unit: "g"},
	{Key: "m4", Label: "Pycnometer + water (M4)", Unit: "g"},
}

func FromFields(f numeric.Fields) Input {
	return Input{M1: f.Float("m1"), M2: f.Float("m2"), M3: f.Float("m3"), M4: f.Float("m4")}
}

// Calculate returns G = (M2-M1) / ((M4-M1) - (M3-M2)).
func Calculate(in Input) Result {
	m1 := numeric.Sanitize(in.M1)
	m2 := numeric.Sanitize(in.M2)
	m3 := numeric.Sanitize(in.M3)
	m4 := numeric.Sanitize(in.M4)

	den := (m4 - m1) - (m3 - m2)
	if den <= 0 {
		return Result{Notes: "Displaced water mass must be greater than zero."}
	}
	return Result{
		SpecificGravity: numeric.Div(m2-m1, den).Round(2),
		Notes:           "Pycnometer method.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "specific_gravity", Label: "Specific gravity of soil (G)", Value: r.SpecificGravity},
	}
}
