// Package raster builds anti-aliased coverage masks for poster compositing.
//
// Masks are *image.Alpha values whose bounds are expressed in canvas
// coordinates, so they can be passed directly as draw masks or as the
// DstMask of an x/image/draw transform.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498307936

// Builder accumulates a path in canvas coordinates and rasterizes it into
// a mask covering a fixed rectangle. Coverage follows the non-zero rule:
// sub-paths of opposite orientation cancel.
type Builder struct {
	z      *vector.Rasterizer
	bounds image.Rectangle
	ox, oy float64
}

// NewBuilder returns a Builder whose mask covers bounds.
func NewBuilder(bounds image.Rectangle) *Builder {
	b := &Builder{
		bounds: bounds,
		ox:     float64(bounds.Min.X),
		oy:     float64(bounds.Min.Y),
	}
	if !bounds.Empty() {
		b.z = vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	}
	return b
}

// Bounds returns the rectangle covered by the mask.
func (b *Builder) Bounds() image.Rectangle {
	return b.bounds
}

func (b *Builder) pt(x, y float64) (float32, float32) {
	return float32(x - b.ox), float32(y - b.oy)
}

// MoveTo starts a new sub-path at (x, y).
func (b *Builder) MoveTo(x, y float64) {
	if b.z == nil {
		return
	}
	b.z.MoveTo(b.pt(x, y))
}

// LineTo adds a line segment to (x, y).
func (b *Builder) LineTo(x, y float64) {
	if b.z == nil {
		return
	}
	b.z.LineTo(b.pt(x, y))
}

// QuadTo adds a quadratic Bézier segment.
func (b *Builder) QuadTo(x1, y1, x, y float64) {
	if b.z == nil {
		return
	}
	bx, by := b.pt(x1, y1)
	cx, cy := b.pt(x, y)
	b.z.QuadTo(bx, by, cx, cy)
}

// CubeTo adds a cubic Bézier segment.
func (b *Builder) CubeTo(x1, y1, x2, y2, x, y float64) {
	if b.z == nil {
		return
	}
	bx, by := b.pt(x1, y1)
	cx, cy := b.pt(x2, y2)
	dx, dy := b.pt(x, y)
	b.z.CubeTo(bx, by, cx, cy, dx, dy)
}

// ClosePath closes the current sub-path.
func (b *Builder) ClosePath() {
	if b.z == nil {
		return
	}
	b.z.ClosePath()
}

// Circle adds a closed circle as four cubic segments. Clockwise is in
// screen space (y pointing down).
func (b *Builder) Circle(cx, cy, r float64, clockwise bool) {
	if r <= 0 {
		return
	}
	dir := 1.0
	if !clockwise {
		dir = -1
	}
	b.MoveTo(cx+r, cy)
	for i := range 4 {
		a0 := dir * float64(i) * math.Pi / 2
		a1 := dir * float64(i+1) * math.Pi / 2
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		b.CubeTo(
			cx+r*(c0-dir*kappa*s0), cy+r*(s0+dir*kappa*c0),
			cx+r*(c1+dir*kappa*s1), cy+r*(s1-dir*kappa*c1),
			cx+r*c1, cy+r*s1,
		)
	}
	b.ClosePath()
}

// Mask rasterizes the accumulated path.
func (b *Builder) Mask() *image.Alpha {
	m := image.NewAlpha(b.bounds)
	if b.z == nil {
		return m
	}
	b.z.DrawOp = draw.Src
	b.z.Draw(m, b.bounds, image.Opaque, image.Point{})
	return m
}

// circleBounds returns the integer box around a circle of radius r,
// grown by one pixel for the anti-aliased edge.
func circleBounds(cx, cy, r float64) image.Rectangle {
	r++
	return image.Rect(
		int(math.Floor(cx-r)),
		int(math.Floor(cy-r)),
		int(math.Ceil(cx+r)),
		int(math.Ceil(cy+r)),
	)
}

// Disc returns the coverage of a filled circle.
func Disc(cx, cy, r float64) *image.Alpha {
	b := NewBuilder(circleBounds(cx, cy, r))
	b.Circle(cx, cy, r, true)
	return b.Mask()
}

// Ring returns the coverage of a circle stroked with the given width,
// centered on radius r. A width that swallows the center degrades to a
// filled disc.
func Ring(cx, cy, r, width float64) *image.Alpha {
	if width <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	outer := r + width/2
	inner := r - width/2
	b := NewBuilder(circleBounds(cx, cy, outer))
	b.Circle(cx, cy, outer, true)
	if inner > 0 {
		b.Circle(cx, cy, inner, false)
	}
	return b.Mask()
}
