package text

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFace_Metrics(t *testing.T) {
	small := testFace(t, 10).Metrics()
	large := testFace(t, 40).Metrics()

	if small.Ascent <= 0 || small.Descent <= 0 || small.Height <= 0 {
		t.Fatalf("Metrics(10) = %+v, want positive values", small)
	}
	if small.Ascent+small.Descent > small.Height+0.5 {
		t.Errorf("ascent+descent %.2f exceeds height %.2f", small.Ascent+small.Descent, small.Height)
	}
	ratio := large.Ascent / small.Ascent
	if math.Abs(ratio-4) > 0.1 {
		t.Errorf("ascent scales by %.3f from 10px to 40px, want 4", ratio)
	}
}

func TestFace_Accessors(t *testing.T) {
	f := testFace(t, 18)
	if f.Size() != 18 {
		t.Errorf("Size = %v, want 18", f.Size())
	}
	if f.Font() == nil || f.Font().Name() == "" {
		t.Error("Font should be set and named")
	}
	if f.ppem() != fixed.I(18) {
		t.Errorf("ppem = %v, want 18", f.ppem())
	}
}

func TestFixedConversion(t *testing.T) {
	tests := []struct {
		in   float64
		want fixed.Int26_6
	}{
		{0, 0},
		{1, 64},
		{1.5, 96},
		{0.01, 1},
		{-2.25, -144},
	}
	for _, tt := range tests {
		if got := floatToFixed(tt.in); got != tt.want {
			t.Errorf("floatToFixed(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if back := fixedToFloat(tt.want); math.Abs(back-tt.in) > 1.0/128 {
			t.Errorf("fixedToFloat(%v) = %v, want about %v", tt.want, back, tt.in)
		}
	}
}
