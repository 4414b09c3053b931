package moisture

import "Civilcalc/internal/numeric"

type Input struct {
	ContainerGrams float64 `json:"container_g"`
	WetGrams       float64 `json:"wet_g"`
	DryGrams       float64 `json:"dry_g"`
}

type Result struct {
	MoisturePercent numeric.Value `json:"moisture_percent"`
	Notes           string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "container_g", Label: "Empty container (W1)", Unit: "g"},
	{Key: "wet_g", Label: "Container + wet soil (W2)", Unit: "g"},
	{Key: "dry_g", Label: "Container + oven-dry soil (W3)", Unit: "g"},
}

func FromFields(f numeric.Fields) Input {
	return Input{
		ContainerGrams: f.Float("container_g"),
		WetGrams:       f.Float("wet_g"),
		DryGrams:       f.Float("dry_g"),
	}
}

// Calculate returns w = (W2-W3)/(W3-W1) x 100.
func Calculate(in Input) Result {
	w1 := numeric.Sanitize(in.ContainerGrams)
	w2 := numeric.Sanitize(in.WetGrams)
	w3 := numeric.Sanitize(in.DryGrams)
	dry := w3 - w1
	if dry <= 0 {
		return Result{Notes: "Dry soil mass must be greater than zero."}
	}
	return Result{
		MoisturePercent: numeric.Div(w2-w3, dry).Mul(100).Round(2),
		Notes:           "Oven-drying method.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "moisture_percent", Label: "Water content", Unit: "%", Value: r.MoisturePercent},
	}
}
