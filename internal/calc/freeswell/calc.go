package freeswell

import "Civilcalc/internal/numeric"

type Input struct {
	VdML float64 `json:"vd_ml"`
	VkML float64 `json:"vk_ml"`
}

type Result struct {
	FSIPercent numeric.Value `json:"fsi_percent"`
	Degree     string        `json:"degree"`
	Notes      string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "vd_ml", Label: "Volume in distilled water (Vd)", Unit: "mL"},
	{Key: "vk_ml", Label: "Volume in kerosene (Vk)", Unit: "mL", Required: true},
}

func FromFields(f numeric.Fields) Input {
	return Input{VdML: f.Float("vd_ml"), VkML: f.Float("vk_ml")}
}

// Calculate returns FSI = (Vd-Vk)/Vk x 100 to one decimal.
func Calculate(in Input) Result {
	vk := numeric.Sanitize(in.VkML)
	if !numeric.Positive(vk) {
		return Result{Notes: "Kerosene volume must be greater than zero."}
	}
	vd := numeric.Sanitize(in.VdML)
	fsi := numeric.Div(vd-vk, vk).Mul(100).Round(1)
	return Result{
		FSIPercent: fsi,
		Degree:     Degree(fsi),
		Notes:      "Differential free swell of soil passing 425 µm sieve.",
	}
}

// Degree classifies the degree of expansiveness.
func Degree(fsi numeric.Value) string {
	v, ok := fsi.Float()
	switch {
	case !ok:
		return ""
	case v < 20:
		return "low"
	case v < 35:
		return "moderate"
	case v < 50:
		return "high"
	default:
		return "very high"
	}
}

func (r Result) Quantities() []numeric.Quantity {
	out := []numeric.Quantity{
		{Key: "fsi_percent", Label: "Free swell index", Unit: "%", Value: r.FSIPercent},
	}
	if r.Degree != "" {
		out = append(out, numeric.Quantity{Key: "degree", Label: "Degree of expansiveness", Text: r.Degree})
	}
	return out
}
