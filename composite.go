package poster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/poster/internal/raster"
)

// InterpolationMode selects how source images are resampled when scaled
// into a viewport.
type InterpolationMode uint8

const (
	// InterpBicubic uses Catmull-Rom resampling. Highest quality, slowest.
	InterpBicubic InterpolationMode = iota

	// InterpBilinear uses approximate bilinear resampling.
	InterpBilinear

	// InterpNearest selects the closest source pixel.
	InterpNearest
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

func (m InterpolationMode) transformer() draw.Transformer {
	switch m {
	case InterpNearest:
		return draw.NearestNeighbor
	case InterpBilinear:
		return draw.ApproxBiLinear
	default:
		return draw.CatmullRom
	}
}

// Border is the ring stroked around a viewport.
type Border struct {
	// Width is the stroke width in pixels. Zero disables the border.
	Width float64
	Color RGBA
}

// drawOptions collects per-call compositor settings.
type drawOptions struct {
	interp InterpolationMode
}

// DrawOption configures a single DrawImageInViewport call.
type DrawOption func(*drawOptions)

// WithDrawInterpolation sets the resampling mode of one draw call.
func WithDrawInterpolation(m InterpolationMode) DrawOption {
	return func(o *drawOptions) {
		o.interp = m
	}
}

// ClearAndFillBackground replaces every pixel of s with c. Every render
// starts with this call so no pixels of a previous frame survive.
func ClearAndFillBackground(s *Surface, c RGBA) {
	s.Clear(c)
}

// CoverScale returns the factor that scales a w×h image so both sides meet
// or exceed the viewport diameter.
func CoverScale(vp Viewport, w, h int) float64 {
	d := vp.Radius * 2
	return math.Max(d/float64(w), d/float64(h))
}

// DrawImageInViewport draws img into the circle vp, scaled to cover it and
// clipped to its edge, then strokes border around it when border is
// non-nil with a positive width.
//
// A nil or empty img is not an error: the image step is skipped and only
// the border is drawn. Pixels outside the circle's bounding box (grown by
// the border) are never touched.
func DrawImageInViewport(s *Surface, img image.Image, vp Viewport, border *Border, opts ...DrawOption) {
	o := drawOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if isMissing(img) {
		Logger().Warn("poster: pane has no image, drawing border only", "pane", string(vp.Pane))
	} else {
		drawCovered(s, img, vp, o.interp)
	}

	if border != nil && border.Width > 0 {
		strokeBorder(s, vp, *border)
	}
}

// isMissing reports whether img has nothing to draw.
func isMissing(img image.Image) bool {
	return img == nil || img.Bounds().Empty()
}

func drawCovered(s *Surface, img image.Image, vp Viewport, interp InterpolationMode) {
	sr := img.Bounds()
	scale := CoverScale(vp, sr.Dx(), sr.Dy())

	// Source center lands on the viewport center.
	srcCX := float64(sr.Min.X) + float64(sr.Dx())/2
	srcCY := float64(sr.Min.Y) + float64(sr.Dy())/2
	s2d := f64.Aff3{
		scale, 0, vp.CenterX - scale*srcCX,
		0, scale, vp.CenterY - scale*srcCY,
	}

	clip := raster.Disc(vp.CenterX, vp.CenterY, vp.Radius)
	if !clip.Bounds().Overlaps(s.img.Rect) {
		return
	}

	interp.transformer().Transform(s.img, s2d, img, sr, draw.Over, &draw.Options{
		DstMask: clip,
	})
}

func strokeBorder(s *Surface, vp Viewport, b Border) {
	ring := raster.Ring(vp.CenterX, vp.CenterY, vp.Radius, b.Width)
	r := ring.Bounds().Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	draw.DrawMask(s.img, r, image.NewUniform(b.Color.Color()), image.Point{}, ring, r.Min, draw.Over)
}
