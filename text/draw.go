package text

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/poster/internal/raster"
)

// overhang is the share of the font size added around the ink box, for
// glyphs that reach past the advance or the ascent.
const overhang = 0.3

// Draw shapes s and draws it with its pen origin at (x, baseline), filled
// with c. It returns the rectangle that may have been touched.
func Draw(dst draw.Image, s string, face *Face, x, baseline float64, c color.Color) image.Rectangle {
	run := Shape(s, face)
	return DrawRun(dst, run, face, x, baseline, c)
}

// DrawCentered draws s horizontally centered on cx.
func DrawCentered(dst draw.Image, s string, face *Face, cx, baseline float64, c color.Color) image.Rectangle {
	run := Shape(s, face)
	return DrawRun(dst, run, face, cx-run.Advance/2, baseline, c)
}

// DrawRun rasterizes the glyph outlines of run and composites them onto
// dst.
func DrawRun(dst draw.Image, run Run, face *Face, x, baseline float64, c color.Color) image.Rectangle {
	if len(run.Glyphs) == 0 {
		return image.Rectangle{}
	}

	m := face.Metrics()
	pad := face.size * overhang
	bounds := image.Rect(
		int(math.Floor(x-pad)),
		int(math.Floor(baseline-m.Ascent-pad)),
		int(math.Ceil(x+run.Advance+pad)),
		int(math.Ceil(baseline+m.Descent+pad)),
	)

	b := raster.NewBuilder(bounds)
	var buf sfnt.Buffer
	ppem := face.ppem()
	for _, g := range run.Glyphs {
		segs, err := face.font.outline.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			Logger().Debug("text: glyph outline unavailable", "glyph", g.ID, "err", err)
			continue
		}
		appendOutline(b, segs, x+g.X, baseline+g.Y)
	}

	r := bounds.Intersect(dst.Bounds())
	if r.Empty() {
		return image.Rectangle{}
	}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, b.Mask(), r.Min, draw.Over)
	return r
}

// appendOutline adds the glyph segments, translated to (ox, oy). sfnt
// outlines are already y-down. Every contour is closed explicitly.
func appendOutline(b *raster.Builder, segs sfnt.Segments, ox, oy float64) {
	open := false
	for _, seg := range segs {
		p := func(i int) (float64, float64) {
			return ox + fixedToFloat(seg.Args[i].X), oy + fixedToFloat(seg.Args[i].Y)
		}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				b.ClosePath()
			}
			b.MoveTo(p(0))
			open = true
		case sfnt.SegmentOpLineTo:
			b.LineTo(p(0))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := p(0)
			x, y := p(1)
			b.QuadTo(x1, y1, x, y)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := p(0)
			x2, y2 := p(1)
			x, y := p(2)
			b.CubeTo(x1, y1, x2, y2, x, y)
		}
	}
	if open {
		b.ClosePath()
	}
}
