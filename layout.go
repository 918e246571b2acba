package poster

import (
	"fmt"
	"image"
	"math"
)

// PaneID identifies one pane of a poster, for example "stars" or "map".
type PaneID string

// CombinedPane is the reserved anchor for text that belongs to the pair of
// panes rather than to one of them. It cannot be used in a pane order.
const CombinedPane PaneID = "combined"

// Arrangement selects how many panes a layout has and how they are placed.
type Arrangement uint8

const (
	// Single places one pane at the canvas center.
	Single Arrangement = iota

	// SideBySide places two panes left and right on a landscape canvas.
	SideBySide

	// Stacked places two panes top and bottom on a portrait canvas.
	Stacked
)

// String returns the settings-file name of the arrangement.
func (a Arrangement) String() string {
	switch a {
	case Single:
		return "single"
	case SideBySide:
		return "side-by-side"
	case Stacked:
		return "stacked"
	default:
		return fmt.Sprintf("Arrangement(%d)", uint8(a))
	}
}

// ParseArrangement parses the names returned by Arrangement.String.
func ParseArrangement(s string) (Arrangement, error) {
	switch s {
	case "single", "":
		return Single, nil
	case "side-by-side", "sidebyside", "landscape":
		return SideBySide, nil
	case "stacked", "portrait":
		return Stacked, nil
	}
	return 0, &InvalidLayoutRequestError{Field: "arrangement", Reason: fmt.Sprintf("%q is unknown", s)}
}

// panes returns the number of panes the arrangement lays out.
func (a Arrangement) panes() int {
	if a == Single {
		return 1
	}
	return 2
}

// LayoutRequest is the input of ComputeLayout.
type LayoutRequest struct {
	CanvasWidth  int
	CanvasHeight int
	Arrangement  Arrangement

	// RadiusPercent is the circle diameter as a percentage of the shorter
	// canvas side. Values outside [0, 100] are clamped.
	RadiusPercent float64

	// OverlapPercent moves the two centers of a multi-pane layout toward
	// the canvas midpoint: 0 keeps the 0.3/0.7 split, 100 makes the
	// centers coincide. Ignored for Single.
	OverlapPercent float64

	// PaneOrder assigns pane identifiers to slots, left/top first.
	PaneOrder []PaneID
}

// Viewport is the circle a pane is drawn into, in canvas pixels.
type Viewport struct {
	Pane    PaneID
	CenterX float64
	CenterY float64
	Radius  float64
}

// Top returns the y coordinate of the top of the circle.
func (v Viewport) Top() float64 { return v.CenterY - v.Radius }

// Bottom returns the y coordinate of the bottom of the circle.
func (v Viewport) Bottom() float64 { return v.CenterY + v.Radius }

// Contains reports whether the point lies inside or on the circle.
func (v Viewport) Contains(x, y float64) bool {
	dx, dy := x-v.CenterX, y-v.CenterY
	return dx*dx+dy*dy <= v.Radius*v.Radius
}

// Bounds returns the smallest integer rectangle containing the circle.
func (v Viewport) Bounds() image.Rectangle {
	return v.boundsPad(0)
}

// boundsPad returns Bounds grown by pad pixels on every side.
func (v Viewport) boundsPad(pad float64) image.Rectangle {
	r := v.Radius + pad
	return image.Rect(
		int(math.Floor(v.CenterX-r)),
		int(math.Floor(v.CenterY-r)),
		int(math.Ceil(v.CenterX+r)),
		int(math.Ceil(v.CenterY+r)),
	)
}

// minRadius keeps every circle drawable.
const minRadius = 1.0

// Slot positions along the split axis, as fractions of the canvas side.
const (
	firstSlot  = 0.3
	secondSlot = 0.7
	midpoint   = 0.5
)

// ComputeLayout maps req to one Viewport per identifier in req.PaneOrder,
// in the same order. It does not reorient the canvas; see Orient.
func ComputeLayout(req LayoutRequest) ([]Viewport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w := float64(req.CanvasWidth)
	h := float64(req.CanvasHeight)
	radius := math.Max(math.Min(w, h)*clampPercent(req.RadiusPercent)/200, minRadius)

	if req.Arrangement == Single {
		return []Viewport{{Pane: req.PaneOrder[0], CenterX: w / 2, CenterY: h / 2, Radius: radius}}, nil
	}

	t := clampPercent(req.OverlapPercent) / 100
	first := firstSlot*(1-t) + midpoint*t
	second := secondSlot*(1-t) + midpoint*t

	vps := make([]Viewport, 2)
	for i, frac := range []float64{first, second} {
		vp := Viewport{Pane: req.PaneOrder[i], Radius: radius}
		if req.Arrangement == SideBySide {
			vp.CenterX, vp.CenterY = w*frac, h*midpoint
		} else {
			vp.CenterX, vp.CenterY = w*midpoint, h*frac
		}
		vps[i] = vp
	}

	Logger().Debug("poster: layout computed",
		"arrangement", req.Arrangement.String(),
		"radius", radius,
		"overlap", t)
	return vps, nil
}

// Validate checks the request without computing geometry.
func (req LayoutRequest) Validate() error {
	switch {
	case req.CanvasWidth <= 0:
		return &InvalidLayoutRequestError{Field: "canvas width", Reason: fmt.Sprintf("must be positive, got %d", req.CanvasWidth)}
	case req.CanvasHeight <= 0:
		return &InvalidLayoutRequestError{Field: "canvas height", Reason: fmt.Sprintf("must be positive, got %d", req.CanvasHeight)}
	case req.Arrangement > Stacked:
		return &InvalidLayoutRequestError{Field: "arrangement", Reason: fmt.Sprintf("%d is unknown", uint8(req.Arrangement))}
	case math.IsNaN(req.RadiusPercent):
		return &InvalidLayoutRequestError{Field: "radius percent", Reason: "is NaN"}
	case math.IsNaN(req.OverlapPercent):
		return &InvalidLayoutRequestError{Field: "overlap percent", Reason: "is NaN"}
	case len(req.PaneOrder) == 0:
		return &InvalidLayoutRequestError{Field: "pane order", Reason: "is empty"}
	case len(req.PaneOrder) != req.Arrangement.panes():
		return &InvalidLayoutRequestError{
			Field:  "pane order",
			Reason: fmt.Sprintf("has %d panes, %s needs %d", len(req.PaneOrder), req.Arrangement, req.Arrangement.panes()),
		}
	}

	seen := make(map[PaneID]bool, len(req.PaneOrder))
	for _, id := range req.PaneOrder {
		switch {
		case id == "":
			return &InvalidLayoutRequestError{Field: "pane order", Reason: "contains an empty pane id"}
		case id == CombinedPane:
			return &InvalidLayoutRequestError{Field: "pane order", Reason: fmt.Sprintf("uses reserved id %q", CombinedPane)}
		case seen[id]:
			return &InvalidLayoutRequestError{Field: "pane order", Reason: fmt.Sprintf("repeats pane %q", id)}
		}
		seen[id] = true
	}
	return nil
}

// Orient returns canvas dimensions suited to arr: landscape (width >=
// height) for SideBySide, portrait for Stacked, unchanged for Single.
func Orient(width, height int, arr Arrangement) (int, int) {
	switch {
	case arr == SideBySide && height > width:
		return height, width
	case arr == Stacked && width > height:
		return height, width
	}
	return width, height
}

// Anchor is the extent text is stacked against: a single pane, or the
// union of all panes for CombinedPane.
type Anchor struct {
	CenterX float64
	Top     float64
	Bottom  float64
	Radius  float64
}

// AnchorOf returns the anchor extent of a single viewport.
func AnchorOf(v Viewport) Anchor {
	return Anchor{CenterX: v.CenterX, Top: v.Top(), Bottom: v.Bottom(), Radius: v.Radius}
}

// Combined returns the anchor spanning every viewport: horizontally
// centered between the outermost left and right edges, with the topmost
// top, the lowest bottom and the largest radius.
func Combined(vps []Viewport) Anchor {
	if len(vps) == 0 {
		return Anchor{}
	}
	left, right := math.Inf(1), math.Inf(-1)
	a := Anchor{Top: math.Inf(1), Bottom: math.Inf(-1)}
	for _, v := range vps {
		left = math.Min(left, v.CenterX-v.Radius)
		right = math.Max(right, v.CenterX+v.Radius)
		a.Top = math.Min(a.Top, v.Top())
		a.Bottom = math.Max(a.Bottom, v.Bottom())
		a.Radius = math.Max(a.Radius, v.Radius)
	}
	a.CenterX = (left + right) / 2
	return a
}

func clampPercent(p float64) float64 {
	return math.Min(math.Max(p, 0), 100)
}
