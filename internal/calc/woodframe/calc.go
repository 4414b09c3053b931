package woodframe

import "Civilcalc/internal/numeric"

const (
	sqInPerSqFt = 144.0
	m3PerCFT    = 0.0283168
)

type Input struct {
	LengthFt    float64 `json:"length_ft"`
	WidthIn     float64 `json:"width_in"`
	ThicknessIn float64 `json:"thickness_in"`
	Quantity    float64 `json:"quantity"`
}

type Result struct {
	CFTPerPiece numeric.Value `json:"cft_per_piece"`
	TotalCFT    numeric.Value `json:"total_cft"`
	TotalM3     numeric.Value `json:"total_m3"`
	Notes       string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "length_ft", Label: "Length", Unit: "ft", Required: true},
	{Key: "width_in", Label: "Width", Unit: "in", Required: true},
	{Key: "thickness_in", Label: "Thickness", Unit: "in", Required: true},
	{Key: "quantity", Label: "No. of pieces"},
}

func FromFields(f numeric.Fields) Input {
	return Input{
		LengthFt:    f.Float("length_ft"),
		WidthIn:     f.Float("width_in"),
		ThicknessIn: f.Float("thickness_in"),
		Quantity:    f.Float("quantity"),
	}
}

// Calculate returns timber volume in cubic feet: L(ft) x W(in) x T(in) / 144.
func Calculate(in Input) Result {
	l := numeric.Sanitize(in.LengthFt)
	w := numeric.Sanitize(in.WidthIn)
	t := numeric.Sanitize(in.ThicknessIn)
	if !numeric.Positive(l, w, t) {
		return Result{Notes: "Length, width and thickness must be greater than zero."}
	}
	qty := numeric.Sanitize(in.Quantity)
	if qty <= 0 {
		qty = 1
	}

	piece := l * w * t / sqInPerSqFt
	total := piece * qty
	return Result{
		CFTPerPiece: numeric.Of(piece).Round(3),
		TotalCFT:    numeric.Of(total).Round(2),
		TotalM3:     numeric.Of(total * m3PerCFT).Round(3),
		Notes:       "Sawn timber volume for frames and chowkhats.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "cft_per_piece", Label: "Volume per piece", Unit: "cft", Value: r.CFTPerPiece},
		{Key: "total_cft", Label: "Total volume", Unit: "cft", Value: r.TotalCFT},
		{Key: "total_m3", Label: "Total volume", Unit: "m³", Value: r.TotalM3},
	}
}
