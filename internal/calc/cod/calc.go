package cod

import "Civilcalc/internal/numeric"

// Milliequivalent weight of oxygen times 1000 mL/L.
const oxygenFactor = 8000.0

type Input struct {
	BlankML   float64 `json:"blank_ml"`
	SampleML  float64 `json:"sample_ml"`
	Normality float64 `json:"normality"`
	VolumeML  float64 `json:"volume_ml"`
}

type Result struct {
	CODMgL numeric.Value `json:"cod_mg_l"`
	Notes  string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "blank_ml", Label: "FAS used for blank (A)", Unit: "mL"},
	{Key: "sample_ml", Label: "FAS used for sample (B)", Unit: "mL"},
	{Key: "normality", Label: "Normality of FAS (N)", Unit: "N"},
	{Key: "volume_ml", Label: "Volume of sample (V)", Unit: "mL", Required: true},
}

func FromFields(f numeric.Fields) Input {
	return Input{
		BlankML:   f.Float("blank_ml"),
		SampleML:  f.Float("sample_ml"),
		Normality: f.Float("normality"),
		VolumeML:  f.Float("volume_ml"),
	}
}

// Calculate returns COD = (A-B) x N x 8000 / V by dichromate reflux titration.
func Calculate(in Input) Result {
	v := numeric.Sanitize(in.VolumeML)
	if !numeric.Positive(v) {
		return Result{Notes: "Sample volume must be greater than zero."}
	}
	a := numeric.Sanitize(in.BlankML)
	b := numeric.Sanitize(in.SampleML)
	n := numeric.Sanitize(in.Normality)
	return Result{
		CODMgL: numeric.Div((a-b)*n*oxygenFactor, v).Round(2),
		Notes:  "Open reflux dichromate method.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "cod_mg_l", Label: "Chemical oxygen demand", Unit: "mg/L", Value: r.CODMgL},
	}
}
