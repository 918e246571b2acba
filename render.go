package poster

import (
	"fmt"
	"image"
)

// Scene is the complete input of one render pass.
type Scene struct {
	Layout     LayoutRequest
	Background RGBA

	// Border is stroked around every pane when non-nil.
	Border *Border

	// Images holds the decoded raster of each pane. A pane without an
	// entry, or with a nil entry, is drawn as an empty ringed circle.
	Images map[PaneID]image.Image

	Text []TextItem
}

// borderWidth returns the stroke width, zero without a border.
func (sc Scene) borderWidth() float64 {
	if sc.Border == nil {
		return 0
	}
	return sc.Border.Width
}

// Result reports what a render pass produced.
type Result struct {
	Viewports []Viewport
	Text      []PlacedText

	// Missing lists panes drawn without an image, in pane order.
	Missing []PaneID
}

// Render allocates a surface of the scene's canvas size and renders into it.
func Render(sc Scene, opts ...RenderOption) (*Surface, *Result, error) {
	if err := sc.Layout.Validate(); err != nil {
		return nil, nil, err
	}
	s, err := NewSurface(sc.Layout.CanvasWidth, sc.Layout.CanvasHeight)
	if err != nil {
		return nil, nil, err
	}
	res, err := RenderTo(s, sc, opts...)
	if err != nil {
		return nil, nil, err
	}
	return s, res, nil
}

// RenderTo renders sc into s, whose size must equal the canvas size.
//
// The pass runs clear, layout, pane compositing and text placement in that
// order. All input is validated before the first pixel is written, so an
// error leaves s untouched. Identical inputs produce identical pixels.
func RenderTo(s *Surface, sc Scene, opts ...RenderOption) (*Result, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if s.Width() != sc.Layout.CanvasWidth || s.Height() != sc.Layout.CanvasHeight {
		return nil, fmt.Errorf("%w: surface %dx%d, canvas %dx%d", ErrSurfaceMismatch,
			s.Width(), s.Height(), sc.Layout.CanvasWidth, sc.Layout.CanvasHeight)
	}

	vps, err := ComputeLayout(sc.Layout)
	if err != nil {
		return nil, err
	}
	placed, err := LayoutText(sc.Text, vps, sc.borderWidth())
	if err != nil {
		return nil, err
	}
	faces, err := resolveFaces(placed, o.book)
	if err != nil {
		return nil, err
	}

	ClearAndFillBackground(s, sc.Background)

	res := &Result{Viewports: vps, Text: placed}
	for _, vp := range vps {
		img := sc.Images[vp.Pane]
		if isMissing(img) {
			res.Missing = append(res.Missing, vp.Pane)
		}
		DrawImageInViewport(s, img, vp, sc.Border, WithDrawInterpolation(o.interp))
	}

	drawPlaced(s, placed, faces)
	return res, nil
}
