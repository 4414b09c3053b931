package aircon

import (
	"math"

	"Civilcalc/internal/numeric"
)

const (
	btuPerCFT    = 6.0
	btuPerPerson = 500.0
	btuPerTon    = 12000.0
	// Above this outdoor temperature the load grows by tempStep per degree.
	baseTempC = 35.0
	tempStep  = 0.02
)

type Input struct {
	LengthFt  float64 `json:"length_ft"`
	BreadthFt float64 `json:"breadth_ft"`
	HeightFt  float64 `json:"height_ft"`
	Persons   float64 `json:"persons"`
	MaxTempC  float64 `json:"max_temp_c"`
}

type Result struct {
	AreaSqFt  numeric.Value `json:"area_sqft"`
	VolumeCFT numeric.Value `json:"volume_cft"`
	BTU       numeric.Value `json:"btu"`
	ACTons    numeric.Value `json:"ac_tons"`
	Notes     string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "length_ft", Label: "Room length", Unit: "ft", Required: true},
	{Key: "breadth_ft", Label: "Room breadth", Unit: "ft", Required: true},
	{Key: "height_ft", Label: "Room height", Unit: "ft", Required: true},
	{Key: "persons", Label: "No. of persons"},
	{Key: "max_temp_c", Label: "Max. outdoor temperature", Unit: "°C"},
}

func FromFields(f numeric.Fields) Input {
	return Input{
		LengthFt:  f.Float("length_ft"),
		BreadthFt: f.Float("breadth_ft"),
		HeightFt:  f.Float("height_ft"),
		Persons:   f.Float("persons"),
		MaxTempC:  f.Float("max_temp_c"),
	}
}

// Calculate sizes a room air conditioner with the volume thumb rule.
func Calculate(in Input) Result {
	l := numeric.Sanitize(in.LengthFt)
	b := numeric.Sanitize(in.BreadthFt)
	h := numeric.Sanitize(in.HeightFt)
	if !numeric.Positive(l, b, h) {
		return Result{Notes: "Room dimensions must be greater than zero."}
	}
	persons := math.Max(0, numeric.Sanitize(in.Persons))
	temp := numeric.Sanitize(in.MaxTempC)

	area := l * b
	volume := area * h
	btu := (volume*btuPerCFT + persons*btuPerPerson) * (1 + math.Max(0, temp-baseTempC)*tempStep)

	return Result{
		AreaSqFt:  numeric.Of(area).Round(2),
		VolumeCFT: numeric.Of(volume).Round(2),
		BTU:       numeric.Of(btu).Round(0),
		ACTons:    numeric.Div(btu, btuPerTon).Round(2),
		Notes:     "Thumb-rule estimate: 6 BTU/cft plus 500 BTU per person, +2% per °C above 35 °C.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "area_sqft", Label: "Floor area", Unit: "sq ft", Value: r.AreaSqFt},
		{Key: "volume_cft", Label: "Room volume", Unit: "cft", Value: r.VolumeCFT},
		{Key: "btu", Label: "Cooling load", Unit: "BTU/h", Value: r.BTU},
		{Key: "ac_tons", Label: "AC capacity", Unit: "ton", Value: r.ACTons},
	}
}
