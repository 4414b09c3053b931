package registry

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"Civilcalc/internal/numeric"
)

func quantity(t *testing.T, out Output, key string) numeric.Quantity {
	t.Helper()
	for _, q := range out.Results {
		if q.Key == key {
			return q
		}
	}
	t.Fatalf("quantity %q missing from %s output", key, out.Calculator)
	return numeric.Quantity{}
}

func TestEvaluateKnownScenarios(t *testing.T) {
	cases := []struct {
		id     string
		fields numeric.Fields
		key    string
		want   string
	}{
		{"specific-gravity", numeric.Fields{"m1": "31.45", "m2": "39.9", "m3": "86.61", "m4": "81.41"}, "specific_gravity", "2.60"},
		{"free-swell-index", numeric.Fields{"vd_ml": "110", "vk_ml": "106"}, "fsi_percent", "3.8"},
		{"cod", numeric.Fields{"blank_ml": "10", "sample_ml": "2", "normality": "0.25", "volume_ml": "10"}, "cod_mg_l", "1600.00"},
		{"ammonia", numeric.Fields{"sample_ml": "5", "blank_ml": "1", "normality": "0.02", "volume_ml": "50"}, "ammonia_n_mg_l", "22.40"},
		{"abrasion-value", numeric.Fields{"w1_g": "5000", "w2_g": "3900"}, "abrasion_percent", "22.00"},
		{"impact-value", numeric.Fields{"w1_g": "300", "w2_g": "45"}, "impact_percent", "15.00"},
		{"water-absorption", numeric.Fields{"ssd_g": "2040", "dry_g": "2000"}, "absorption_percent", "2.00"},
		{"moisture-content", numeric.Fields{"container_g": "20", "wet_g": "70", "dry_g": "60"}, "moisture_percent", "25.00"},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			out, err := Evaluate(tc.id, tc.fields)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := quantity(t, out, tc.key).Value.String(); got != tc.want {
				t.Fatalf("%s=%s want %s", tc.key, got, tc.want)
			}
		})
	}
}

func TestEvaluateGuardedOutputsAreUndefined(t *testing.T) {
	for _, c := range List() {
		t.Run(c.ID, func(t *testing.T) {
			out := c.Evaluate(nil)
			for _, q := range out.Results {
				if q.Value.Defined() {
					t.Fatalf("%s: blank form produced %s=%s", c.ID, q.Key, q.Value)
				}
			}
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	fields := numeric.Fields{"length_ft": "14", "breadth_ft": "12", "height_ft": "10", "persons": "3", "max_temp_c": "42"}
	a, _ := Evaluate("ac-sizing", fields)
	b, _ := Evaluate("ac-sizing", fields)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("outputs differ:\n%+v\n%+v", a, b)
	}
}

func TestEvaluateUnknownCalculator(t *testing.T) {
	_, err := Evaluate("nope", nil)
	var unknown ErrUnknownCalculator
	if !errors.As(err, &unknown) || unknown.ID != "nope" {
		t.Fatalf("expected ErrUnknownCalculator, got %v", err)
	}
}

func TestRegistryIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range List() {
		if seen[c.ID] {
			t.Fatalf("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.Fields) == 0 {
			t.Fatalf("%s has no fields", c.ID)
		}
	}
}

func TestEvaluateTrialsMeanSkipsUndefined(t *testing.T) {
	res, err := EvaluateTrials("abrasion-value", []numeric.Fields{
		{"w1_g": "5000", "w2_g": "3900"},
		{"w1_g": "", "w2_g": "3800"},
		{"w1_g": "5000", "w2_g": "3800"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Trials) != 3 {
		t.Fatalf("expected 3 trials, got %d", len(res.Trials))
	}
	if len(res.Mean) != 1 {
		t.Fatalf("expected one mean quantity, got %+v", res.Mean)
	}
	v, ok := res.Mean[0].Value.Float()
	if !ok || math.Abs(v-23) > 1e-9 {
		t.Fatalf("mean=%v,%v want 23", v, ok)
	}
	if res.Defined["abrasion_percent"] != 2 {
		t.Fatalf("defined=%v", res.Defined)
	}
}

func TestEvaluateTrialsAllUndefined(t *testing.T) {
	res, err := EvaluateTrials("cod", []numeric.Fields{{"blank_ml": "1"}, {"volume_ml": "0"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mean[0].Value.Defined() {
		t.Fatalf("expected undefined mean, got %s", res.Mean[0].Value)
	}
}

func TestEvaluateTrialsExcludesTextOutputs(t *testing.T) {
	res, err := EvaluateTrials("impact-value", []numeric.Fields{{"w1_g": "300", "w2_g": "45"}, {"w1_g": "300", "w2_g": "60"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range res.Mean {
		if q.Key == "grade" {
			t.Fatal("text output must not be averaged")
		}
	}
	if got := res.Mean[0].Value.String(); got != "17.50" {
		t.Fatalf("mean impact=%s want 17.50", got)
	}
}

func TestEvaluateTrialsRequiresTrials(t *testing.T) {
	if _, err := EvaluateTrials("cod", nil); err == nil {
		t.Fatal("expected error for empty trials")
	}
}

func TestEvaluateHugeInputsStayEncodable(t *testing.T) {
	out, err := Evaluate("cod", numeric.Fields{"blank_ml": "1e304", "sample_ml": "0", "normality": "1", "volume_ml": "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := quantity(t, out, "cod_mg_l").Value.Float()
	if !ok || math.IsInf(v, 0) || math.IsNaN(v) {
		t.Fatalf("cod=%v,%v", v, ok)
	}
	if _, err := json.Marshal(out); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}
