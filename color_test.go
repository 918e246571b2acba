package poster

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func absDiff(a, b float64) float64 { return math.Abs(a - b) }

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#000", Black},
		{"fff", White},
		{"#ff0000", Red},
		{"#00ff0080", RGBA{0, 1, 0, 128.0 / 255}},
		{"#f008", RGBA{1, 0, 0, 136.0 / 255}},
		{"nonsense", Black},
		{"", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in)
			if absDiff(got.R, tt.want.R) > 1e-9 || absDiff(got.G, tt.want.G) > 1e-9 ||
				absDiff(got.B, tt.want.B) > 1e-9 || absDiff(got.A, tt.want.A) > 1e-9 {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("  Gold ")
	if err != nil {
		t.Fatalf("ParseColor(Gold) error = %v", err)
	}
	if got != Gold {
		t.Errorf("ParseColor(Gold) = %v, want %v", got, Gold)
	}

	got, err = ParseColor("#1a2b3c")
	if err != nil {
		t.Fatalf("ParseColor(#1a2b3c) error = %v", err)
	}
	if got.String() != "#1a2b3cff" {
		t.Errorf("ParseColor(#1a2b3c).String() = %q, want #1a2b3cff", got.String())
	}

	for _, bad := range []string{"", "#12", "#ggg", "#1234567", "chartreuse-ish"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", bad, err)
		}
	}
}

func TestRGBA_Color(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}.Color().(color.NRGBA)
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 128}
	if c != want {
		t.Errorf("Color() = %v, want %v", c, want)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 128, G: 0, B: 0, A: 128})
	if absDiff(got.R, 1) > 0.01 || got.G != 0 || absDiff(got.A, 128.0/255) > 0.001 {
		t.Errorf("FromColor(premultiplied half red) = %v, want unpremultiplied red at half alpha", got)
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {128, 128}, {300, 255}, {math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := clamp255(tt.in); got != tt.want {
			t.Errorf("clamp255(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
