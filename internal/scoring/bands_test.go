package scoring

import "testing"

func TestBandBoundaries(t *testing.T) {
	tests := []struct {
		value float64
		want  Band
	}{
		{0, BandTerrible},
		{1.9, BandTerrible},
		{2.0, BandPoor},
		{3.9, BandPoor},
		{4.0, BandFair},
		{5.9, BandFair},
		{6.0, BandGood},
		{7.9, BandGood},
		{8.0, BandExcellent},
		{10, BandExcellent},
	}
	for _, tt := range tests {
		if got := BandFor(tt.value); got != tt.want {
			t.Errorf("BandFor(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestBandColorAndLabelAgree(t *testing.T) {
	// Label and color must come from the same band so views can never
	// show a "good" label with an "excellent" color.
	seen := map[string]Band{}
	for v := 0.0; v <= 10.0; v += 0.1 {
		b := BandFor(v)
		c := b.Color()
		if prev, ok := seen[c]; ok && prev != b {
			t.Fatalf("color %s shared by bands %s and %s", c, prev, b)
		}
		seen[c] = b
		if b.LabelKey() != "score."+string(b) {
			t.Errorf("unexpected label key %s", b.LabelKey())
		}
	}
}

func TestProfileRainWeightsNonNegative(t *testing.T) {
	for _, a := range append(AllActivities, ActivityType("unknown")) {
		p := profileFor(a)
		if p.rainAmount < 0 || p.rainProb < 0 {
			t.Errorf("%s: negative rain weight (%f, %f)", a, p.rainAmount, p.rainProb)
		}
		if p.base <= 0 || p.base > 10 {
			t.Errorf("%s: base %f out of range", a, p.base)
		}
	}
}

func TestParseActivity(t *testing.T) {
	if a, ok := ParseActivity("sailing"); !ok || a != ActivitySailing {
		t.Errorf("ParseActivity(sailing) = %v, %v", a, ok)
	}
	if _, ok := ParseActivity("snowboarding"); ok {
		t.Error("expected snowboarding to be unknown")
	}
}
