package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics holds vertical font metrics in pixels. Descent is positive
// (distance below the baseline).
type Metrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Face is a Font at a specific pixel size. Face is immutable and safe for
// concurrent use.
type Face struct {
	font *Font
	size float64
}

// NewFace returns f at size pixels.
func NewFace(f *Font, size float64) *Face {
	return &Face{font: f, size: size}
}

// Font returns the font of the face.
func (f *Face) Font() *Font { return f.font }

// Size returns the size of the face in pixels.
func (f *Face) Size() float64 { return f.size }

// ppem returns the size in 26.6 fixed point.
func (f *Face) ppem() fixed.Int26_6 {
	return floatToFixed(f.size)
}

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.font.outline.Metrics(&buf, f.ppem(), font.HintingNone)
	if err != nil {
		// Approximate with common Latin proportions.
		return Metrics{Ascent: f.size * 0.8, Descent: f.size * 0.2, Height: f.size * 1.2}
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: math.Abs(fixedToFloat(m.Descent)),
		Height:  fixedToFloat(m.Height),
	}
}

// Measurement is the extent of a shaped string.
type Measurement struct {
	Advance float64
	Ascent  float64
	Descent float64
}

// Measure returns the advance width of s and the face's vertical metrics.
func Measure(s string, face *Face) Measurement {
	m := face.Metrics()
	return Measurement{
		Advance: Shape(s, face).Advance,
		Ascent:  m.Ascent,
		Descent: m.Descent,
	}
}

// floatToFixed converts a float64 to fixed.Int26_6, rounding to the
// nearest 1/64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// fixedToFloat converts fixed.Int26_6 to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
