package gradation

import (
	"math"

	"Civilcalc/internal/numeric"
)

// ParseWeights converts raw form values. Blank entries are dropped (nothing
// retained); entries that are not finite numbers become NaN so the corrupt
// policy of the table decides what they mean.
func ParseWeights(raw map[string]string) Weights {
	out := make(Weights, len(raw))
	for size, text := range raw {
		v, st := numeric.Parse(text)
		switch st {
		case numeric.Valid:
			out[size] = v
		case numeric.Invalid:
			out[size] = math.NaN()
		}
	}
	return out
}

// ParseTotal reads the sample total weight. Anything but a positive finite
// number yields NaN, which Analyze treats as "no total entered".
func ParseTotal(raw string) float64 {
	v, st := numeric.Parse(raw)
	if st != numeric.Valid || v <= 0 {
		return math.NaN()
	}
	return v
}
