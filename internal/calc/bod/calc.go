package bod

import "Civilcalc/internal/numeric"

const defaultBottleML = 300.0

type Input struct {
	DOInitial   float64 `json:"do_initial"`
	DOFinal     float64 `json:"do_final"`
	SampleML    float64 `json:"sample_ml"`
	BottleML    float64 `json:"bottle_ml"`
	SeedInitial float64 `json:"seed_initial"`
	SeedFinal   float64 `json:"seed_final"`
	SeedFactor  float64 `json:"seed_factor"`
}

type Result struct {
	DilutionFactor numeric.Value `json:"dilution_factor"`
	BODMgL         numeric.Value `json:"bod_mg_l"`
	Notes          string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "do_initial", Label: "Initial DO of diluted sample (D1)", Unit: "mg/L"},
	{Key: "do_final", Label: "DO after 5 days incubation (D2)", Unit: "mg/L"},
	{Key: "sample_ml", Label: "Volume of sample", Unit: "mL", Required: true},
	{Key: "bottle_ml", Label: "Volume of BOD bottle", Unit: "mL"},
	{Key: "seed_initial", Label: "Initial DO of seed control (B1)", Unit: "mg/L"},
	{Key: "seed_final", Label: "Final DO of seed control (B2)", Unit: "mg/L"},
	{Key: "seed_factor", Label: "Seed ratio (f)"},
}

func FromFields(f numeric.Fields) Input {
	return Input{
		DOInitial:   f.Float("do_initial"),
		DOFinal:     f.Float("do_final"),
		SampleML:    f.Float("sample_ml"),
		BottleML:    f.Float("bottle_ml"),
		SeedInitial: f.Float("seed_initial"),
		SeedFinal:   f.Float("seed_final"),
		SeedFactor:  f.Float("seed_factor"),
	}
}

// Calculate returns the 5-day BOD. Seed correction terms left blank drop out.
func Calculate(in Input) Result {
	sample := numeric.Sanitize(in.SampleML)
	bottle := numeric.Sanitize(in.BottleML)
	if bottle <= 0 {
		bottle = defaultBottleML
	}
	if !numeric.Positive(sample) {
		return Result{Notes: "Sample volume must be greater than zero."}
	}

	p := numeric.Div(sample, bottle)
	depletion := numeric.Sanitize(in.DOInitial) - numeric.Sanitize(in.DOFinal)
	seed := (numeric.Sanitize(in.SeedInitial) - numeric.Sanitize(in.SeedFinal)) * numeric.Sanitize(in.SeedFactor)

	return Result{
		DilutionFactor: p.Round(4),
		BODMgL:         numeric.Div(depletion-seed, p.Or(0)).Round(2),
		Notes:          "BOD5 at 20 °C, dilution method.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "dilution_factor", Label: "Decimal fraction of sample (P)", Value: r.DilutionFactor},
		{Key: "bod_mg_l", Label: "Biochemical oxygen demand", Unit: "mg/L", Value: r.BODMgL},
	}
}
