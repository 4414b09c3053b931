// Package numeric holds the guards shared by every calculator: a numeric
// result that may be "no result", raw field parsing and guarded arithmetic.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
)

// Placeholder is what an undefined Value renders as.
const Placeholder = "-"

// Value is a calculated number or the "no result" marker. The zero Value is
// undefined. NaN and infinities never become defined values.
type Value struct {
	v    float64
	ok   bool
	prec int
}

func Of(v float64) Value {
	if !Finite(v) {
		return Value{}
	}
	return Value{v: v, ok: true, prec: -1}
}

func None() Value {
	return Value{}
}

func (x Value) Defined() bool {
	return x.ok
}

func (x Value) Float() (float64, bool) {
	return x.v, x.ok
}

// Or returns the number, or def when there is no result.
func (x Value) Or(def float64) float64 {
	if !x.ok {
		return def
	}
	return x.v
}

// Precision reports the number of decimals the value was rounded to, or -1.
func (x Value) Precision() int {
	if !x.ok {
		return -1
	}
	return x.prec
}

// Round fixes the value to prec decimal places.
func (x Value) Round(prec int) Value {
	if !x.ok {
		return x
	}
	if prec < 0 {
		x.prec = -1
		return x
	}
	return Value{v: Round(x.v, prec), ok: true, prec: prec}
}

func (x Value) Mul(k float64) Value {
	if !x.ok {
		return x
	}
	return Of(x.v * k)
}

func (x Value) String() string {
	if !x.ok {
		return Placeholder
	}
	return strconv.FormatFloat(x.v, 'f', x.prec, 64)
}

func (x Value) MarshalJSON() ([]byte, error) {
	if !x.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(x.v, 'f', x.prec, 64)), nil
}

func (x *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*x = Value{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*x = Of(f)
	return nil
}

func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Sanitize maps NaN and infinities to 0.
func Sanitize(f float64) float64 {
	if !Finite(f) {
		return 0
	}
	return f
}

// Positive reports whether every operand is finite and strictly positive.
func Positive(vals ...float64) bool {
	for _, v := range vals {
		if !Finite(v) || v <= 0 {
			return false
		}
	}
	return true
}

// Div is num/den, or no result when den is zero or either operand is not finite.
func Div(num, den float64) Value {
	if !Finite(num) || !Finite(den) || den == 0 {
		return None()
	}
	return Of(num / den)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round fixes v to prec decimals. Values too large to scale are returned as is.
func Round(v float64, prec int) float64 {
	p := math.Pow(10, float64(prec))
	scaled := v * p
	if !Finite(scaled) {
		return v
	}
	return math.Round(scaled) / p
}

// Mean averages the defined values only. With nothing defined there is no result.
func Mean(vals []Value) Value {
	var sum float64
	n := 0
	for _, v := range vals {
		if !v.ok {
			continue
		}
		sum += v.v
		n++
	}
	if n == 0 {
		return None()
	}
	return Of(sum / float64(n))
}
