package tank

import (
	"math"

	"Civilcalc/internal/numeric"
)

type Shape string

const (
	ShapeRectangular Shape = "rectangular"
	ShapeCylindrical Shape = "cylindrical"
)

const litresPerM3 = 1000.0

type Input struct {
	Shape     Shape   `json:"shape"`
	LengthM   float64 `json:"length_m"`
	BreadthM  float64 `json:"breadth_m"`
	HeightM   float64 `json:"height_m"`
	DiameterM float64 `json:"diameter_m"`
}

type Result struct {
	VolumeM3  numeric.Value `json:"volume_m3"`
	CapacityL numeric.Value `json:"capacity_l"`
	Shape     Shape         `json:"shape"`
	Notes     string        `json:"notes"`
}

var Fields = []numeric.FieldSpec{
	{Key: "shape", Label: "Tank shape", Options: []string{string(ShapeRectangular), string(ShapeCylindrical)}},
	{Key: "length_m", Label: "Length", Unit: "m"},
	{Key: "breadth_m", Label: "Breadth", Unit: "m"},
	{Key: "height_m", Label: "Height", Unit: "m", Required: true},
	{Key: "diameter_m", Label: "Diameter", Unit: "m"},
}

func FromFields(f numeric.Fields) Input {
	return Input{
		Shape:     Shape(f.Text("shape")),
		LengthM:   f.Float("length_m"),
		BreadthM:  f.Float("breadth_m"),
		HeightM:   f.Float("height_m"),
		DiameterM: f.Float("diameter_m"),
	}
}

func Calculate(in Input) Result {
	if in.Shape == "" {
		in.Shape = ShapeRectangular
	}
	h := numeric.Sanitize(in.HeightM)

	var volume float64
	switch in.Shape {
	case ShapeRectangular:
		l := numeric.Sanitize(in.LengthM)
		b := numeric.Sanitize(in.BreadthM)
		if !numeric.Positive(l, b, h) {
			return Result{Shape: in.Shape, Notes: "Length, breadth and height must be greater than zero."}
		}
		volume = l * b * h
	case ShapeCylindrical:
		d := numeric.Sanitize(in.DiameterM)
		if !numeric.Positive(d, h) {
			return Result{Shape: in.Shape, Notes: "Diameter and height must be greater than zero."}
		}
		volume = math.Pi * d * d / 4.0 * h
	default:
		return Result{Shape: in.Shape, Notes: "Unknown tank shape."}
	}

	return Result{
		VolumeM3:  numeric.Of(volume).Round(2),
		CapacityL: numeric.Of(volume * litresPerM3).Round(0),
		Shape:     in.Shape,
		Notes:     "Gross internal capacity, no freeboard deducted.",
	}
}

func (r Result) Quantities() []numeric.Quantity {
	return []numeric.Quantity{
		{Key: "volume_m3", Label: "Tank volume", Unit: "m³", Value: r.VolumeM3},
		{Key: "capacity_l", Label: "Capacity", Unit: "L", Value: r.CapacityL},
	}
}
