// Package registry maps calculator ids to their formulas. Every calculator is a
// pure function from raw form fields to labelled quantities.
package registry

import (
	"fmt"

	"Civilcalc/internal/calc/abrasion"
	"Civilcalc/internal/calc/absorption"
	"Civilcalc/internal/calc/aircon"
	"Civilcalc/internal/calc/ammonia"
	"Civilcalc/internal/calc/bod"
	"Civilcalc/internal/calc/cod"
	"Civilcalc/internal/calc/freeswell"
	"Civilcalc/internal/calc/impact"
	"Civilcalc/internal/calc/moisture"
	"Civilcalc/internal/calc/specificgravity"
	"Civilcalc/internal/calc/tank"
	"Civilcalc/internal/calc/woodframe"
	"Civilcalc/internal/numeric"
)

const (
	CategoryEstimation = "estimation"
	CategoryWater      = "water-quality"
	CategorySoil       = "soil"
	CategoryAggregate  = "aggregate"
)

type evalFunc func(numeric.Fields) ([]numeric.Quantity, string)

type Calculator struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Category string              `json:"category"`
	Fields   []numeric.FieldSpec `json:"fields"`
	eval     evalFunc
}

type Output struct {
	Calculator string             `json:"calculator"`
	Results    []numeric.Quantity `json:"results"`
	Notes      string             `json:"notes,omitempty"`
}

// ErrUnknownCalculator is returned for ids that are not registered.
type ErrUnknownCalculator struct {
	ID string
}

func (e ErrUnknownCalculator) Error() string {
	return fmt.Sprintf("unknown calculator %q", e.ID)
}

var calculators = []Calculator{
	{
		ID: "ac-sizing", Name: "AC Tonnage Calculator", Category: CategoryEstimation, Fields: aircon.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := aircon.Calculate(aircon.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "tank-volume", Name: "Water Tank Capacity", Category: CategoryEstimation, Fields: tank.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := tank.Calculate(tank.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "wood-frame", Name: "Wood Frame Volume (CFT)", Category: CategoryEstimation, Fields: woodframe.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := woodframe.Calculate(woodframe.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "cod", Name: "Chemical Oxygen Demand", Category: CategoryWater, Fields: cod.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := cod.Calculate(cod.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "bod", Name: "Biochemical Oxygen Demand", Category: CategoryWater, Fields: bod.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := bod.Calculate(bod.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "ammonia", Name: "Ammonia Nitrogen", Category: CategoryWater, Fields: ammonia.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := ammonia.Calculate(ammonia.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "specific-gravity", Name: "Specific Gravity of Soil", Category: CategorySoil, Fields: specificgravity.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := specificgravity.Calculate(specificgravity.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "free-swell-index", Name: "Free Swell Index", Category: CategorySoil, Fields: freeswell.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := freeswell.Calculate(freeswell.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "moisture-content", Name: "Moisture Content of Soil", Category: CategorySoil, Fields: moisture.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := moisture.Calculate(moisture.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "abrasion-value", Name: "Aggregate Abrasion Value", Category: CategoryAggregate, Fields: abrasion.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := abrasion.Calculate(abrasion.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "impact-value", Name: "Aggregate Impact Value", Category: CategoryAggregate, Fields: impact.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := impact.Calculate(impact.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
	{
		ID: "water-absorption", Name: "Water Absorption of Aggregate", Category: CategoryAggregate, Fields: absorption.Fields,
		eval: func(f numeric.Fields) ([]numeric.Quantity, string) {
			r := absorption.Calculate(absorption.FromFields(f))
			return r.Quantities(), r.Notes
		},
	},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(calculators))
	for i, c := range calculators {
		m[c.ID] = i
	}
	return m
}()

func List() []Calculator {
	out := make([]Calculator, len(calculators))
	copy(out, calculators)
	return out
}

func Lookup(id string) (Calculator, bool) {
	i, ok := byID[id]
	if !ok {
		return Calculator{}, false
	}
	return calculators[i], true
}

// Evaluate runs the named calculator. Numeric problems in fields never fail;
// they surface as undefined quantities.
func Evaluate(id string, fields numeric.Fields) (Output, error) {
	c, ok := Lookup(id)
	if !ok {
		return Output{}, ErrUnknownCalculator{ID: id}
	}
	return c.Evaluate(fields), nil
}

func (c Calculator) Evaluate(fields numeric.Fields) Output {
	if fields == nil {
		fields = numeric.Fields{}
	}
	results, notes := c.eval(fields)
	return Output{Calculator: c.ID, Results: results, Notes: notes}
}
