package ammonia

import "Civilcalc/internal/numeric"

// Milliequivalent weight of nitrogen times 1000 mL/L.
const nitrogenFactor = 14000.0

type Input struct {
	SampleML  float64 `json:"sample_ml"`
	BlankML   float64 `json:"blank_ml"`
	Normality float64 `json:"normality"`
	VolumeML  float64 `json:"volume_ml"`
}

type Result struct {
	AmmoniaNMgL numeric.Value `json:"ammonia_n_mg_l"`
	Notes       string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "sample_ml", Label: "H2SO4 titrated for sample (A)", Unit: "mL"},
	{Key: "blank_ml", Label: "H2SO4 titrated for blank (B)", Unit: "mL"},
	{Key: "normality", Label: "Normality of H2SO4 (N)", Unit: "N"},
	{Key: "volume_ml", Label: "Volume of sample (V)", Unit: "mL", Required: true},
}

func FromFields(f numeric.Fields) Input {
	return Input{
		SampleML:  f.Float("sample_ml"),
		BlankML:   f.Float("blank_ml"),
		Normality: f.Float("normality"),
		VolumeML:  f.Float("volume_ml"),
	}
}

// Calculate returns ammonia nitrogen after distillation and titration.
func Calculate(in Input) Result {
	v := numeric.Sanitize(in.VolumeML)
	if !numeric.Positive(v) {
		return Result{Notes: "Sample volume must be greater than zero."}
	}
	a := numeric.Sanitize(in.SampleML)
	b := numeric.Sanitize(in.BlankML)
	n := numeric.Sanitize(in.Normality)
	return Result{
		AmmoniaNMgL: numeric.Div((a-b)*n*nitrogenFactor, v).Round(2),
		Notes:       "Titrimetric method, result as NH3-N.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "ammonia_n_mg_l", Label: "Ammonia nitrogen", Unit: "mg/L", Value: r.AmmoniaNMgL},
	}
}
