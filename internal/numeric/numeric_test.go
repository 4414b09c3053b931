package numeric

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in    string
		want  float64
		state State
	}{
		{"", 0, Blank},
		{"   ", 0, Blank},
		{"12.5", 12.5, Valid},
		{" -3 ", -3, Valid},
		{"abc", 0, Invalid},
		{"NaN", 0, Invalid},
		{"Inf", 0, Invalid},
		{"1e400", 0, Invalid},
	}
	for _, tc := range cases {
		got, st := Parse(tc.in)
		if got != tc.want || st != tc.state {
			t.Fatalf("Parse(%q)=(%v,%v), want (%v,%v)", tc.in, got, st, tc.want, tc.state)
		}
	}
}

func TestFieldsFloatReadsZeroForBadInput(t *testing.T) {
	f := Fields{"a": "4", "b": "x", "c": ""}
	if f.Float("a") != 4 || f.Float("b") != 0 || f.Float("c") != 0 || f.Float("missing") != 0 {
		t.Fatalf("unexpected field values: %v", f)
	}
}

func TestDivGuards(t *testing.T) {
	if Div(1, 0).Defined() {
		t.Fatal("expected no result for zero denominator")
	}
	if Div(math.NaN(), 2).Defined() {
		t.Fatal("expected no result for NaN numerator")
	}
	if Div(1, math.Inf(1)).Defined() {
		t.Fatal("expected no result for infinite denominator")
	}
	v, ok := Div(9, 3).Float()
	if !ok || v != 3 {
		t.Fatalf("Div(9,3)=%v,%v", v, ok)
	}
}

func TestOfRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if Of(f).Defined() {
			t.Fatalf("Of(%v) should be undefined", f)
		}
	}
}

func TestMeanSkipsUndefined(t *testing.T) {
	got := Mean([]Value{Of(10), None(), Of(20)})
	if v, ok := got.Float(); !ok || v != 15 {
		t.Fatalf("mean=%v,%v want 15", v, ok)
	}
	if Mean([]Value{None(), None()}).Defined() {
		t.Fatal("all-undefined mean must be undefined")
	}
	if Mean(nil).Defined() {
		t.Fatal("empty mean must be undefined")
	}
}

func TestValueFormatting(t *testing.T) {
	v := Of(2.6000000000000005).Round(2)
	if v.String() != "2.60" {
		t.Fatalf("String()=%q", v.String())
	}
	data, err := json.Marshal(struct {
		A Value `json:"a"`
		B Value `json:"b"`
	}{A: v, B: None()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"a":2.60,"b":null}` {
		t.Fatalf("json=%s", data)
	}
	if None().String() != Placeholder {
		t.Fatalf("undefined should render as placeholder")
	}
}

func TestFieldsUnmarshalMixedScalars(t *testing.T) {
	var f Fields
	if err := json.Unmarshal([]byte(`{"a":"1.5","b":2,"c":null,"d":true}`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f["a"] != "1.5" || f["b"] != "2" || f["c"] != "" || f["d"] != "true" {
		t.Fatalf("unexpected fields: %#v", f)
	}
	if f.Float("d") != 0 {
		t.Fatal("boolean field should read as 0")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 100) != 0 || Clamp(101, 0, 100) != 100 || Clamp(50, 0, 100) != 50 {
		t.Fatal("clamp out of range")
	}
}

func TestRoundLargeMagnitudeStaysFinite(t *testing.T) {
	for _, f := range []float64{8e307, -8e307, math.MaxFloat64, 1.9e306} {
		v := Of(f).Round(2)
		got, ok := v.Float()
		if !ok || got != f {
			t.Fatalf("Round(%g)=%v,%v want %g", f, got, ok, f)
		}
		if _, err := json.Marshal(v); err != nil {
			t.Fatalf("marshal %g: %v", f, err)
		}
	}
	if got := Round(1.005e10, 2); math.Abs(got-1.005e10) > 1e-3 {
		t.Fatalf("Round=%v", got)
	}
}
