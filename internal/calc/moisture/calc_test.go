package moisture

import "testing"

func TestMoistureContent(t *testing.T) {
	res := Calculate(Input{ContainerGrams: 20, WetGrams: 70, DryGrams: 60})
	if res.MoisturePercent.String() != "25.00" {
		t.Fatalf("moisture=%s want 25.00", res.MoisturePercent)
	}
}

func TestMoistureGuards(t *testing.T) {
	for _, in := range []Input{
		{ContainerGrams: 20, WetGrams: 70, DryGrams: 20},
		{ContainerGrams: 30, WetGrams: 70, DryGrams: 20},
		{},
	} {
		if Calculate(in).MoisturePercent.Defined() {
			t.Fatalf("%+v: expected no result", in)
		}
	}
}
