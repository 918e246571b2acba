package poster

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/poster/text"
)

// Position places a text item above or below its anchor.
type Position uint8

const (
	// Below stacks text downward from the bottom of the anchor.
	Below Position = iota

	// Above stacks text upward from the top of the anchor.
	Above
)

// String returns the settings-file name of the position.
func (p Position) String() string {
	switch p {
	case Below:
		return "below"
	case Above:
		return "above"
	default:
		return fmt.Sprintf("Position(%d)", uint8(p))
	}
}

// ParsePosition parses the names returned by Position.String.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "below", "":
		return Below, nil
	case "above":
		return Above, nil
	}
	return 0, fmt.Errorf("poster: unknown text position %q", s)
}

// Spacing constants of the text stack.
const (
	// lineAdvance is the baseline step as a multiple of the font size.
	lineAdvance = 1.2

	// marginRatio is the gap between anchor edge and first baseline as a
	// share of the anchor radius.
	marginRatio = 0.1
)

// TextItem is one styled caption line.
type TextItem struct {
	Text       string
	FontFamily string
	FontSize   float64
	Color      RGBA
	Bold       bool
	Italic     bool

	// Order sorts items within one anchor and position. Reading order
	// top to bottom follows ascending Order for both positions.
	Order int

	// Anchor is the pane the item belongs to, or CombinedPane.
	Anchor   PaneID
	Position Position
}

// FontSpec returns the CSS font shorthand of the item, for example
// `italic bold 24px "Go Mono"`.
func (it TextItem) FontSpec() string {
	var sb strings.Builder
	if it.Italic {
		sb.WriteString("italic ")
	}
	if it.Bold {
		sb.WriteString("bold ")
	}
	sb.WriteString(strconv.FormatFloat(it.FontSize, 'f', -1, 64))
	sb.WriteString("px ")

	family := strings.TrimSpace(it.FontFamily)
	switch {
	case family == "":
		sb.WriteString("sans-serif")
	case strings.ContainsAny(family, " \t"):
		sb.WriteString(strconv.Quote(family))
	default:
		sb.WriteString(family)
	}
	return sb.String()
}

// style returns the font style of the item.
func (it TextItem) style() text.Style {
	return text.StyleOf(it.Bold, it.Italic)
}

// PlacedText is a text item with its computed position: X is the
// horizontal center of the line, Y its alphabetic baseline.
type PlacedText struct {
	Item TextItem
	X, Y float64
}

// LayoutText computes the baseline of every item without drawing.
//
// Items are grouped by anchor, then by position. Below items start at
// bottom + borderWidth + margin and advance by 1.2 × font size in
// ascending order; Above items start at top - borderWidth - margin and
// climb by 1.2 × font size in descending order, so the highest order ends
// nearest the pane. The margin is a tenth of the anchor radius.
//
// The result lists anchors in order of first appearance, each anchor's
// Above lines then Below lines, both top to bottom.
func LayoutText(items []TextItem, viewports []Viewport, borderWidth float64) ([]PlacedText, error) {
	byPane := make(map[PaneID]Viewport, len(viewports))
	for _, v := range viewports {
		byPane[v.Pane] = v
	}

	type group struct {
		anchor       Anchor
		above, below []TextItem
	}
	var order []PaneID
	groups := make(map[PaneID]*group)

	for i, it := range items {
		if !(it.FontSize > 0) || math.IsInf(it.FontSize, 0) {
			return nil, &InvalidTextItemError{Index: i, Reason: fmt.Sprintf("font size must be positive, got %v", it.FontSize)}
		}
		if it.Position > Above {
			return nil, &InvalidTextItemError{Index: i, Reason: fmt.Sprintf("unknown position %d", uint8(it.Position))}
		}
		g, ok := groups[it.Anchor]
		if !ok {
			var anchor Anchor
			switch v, known := byPane[it.Anchor]; {
			case it.Anchor == CombinedPane && len(viewports) > 0:
				anchor = Combined(viewports)
			case known:
				anchor = AnchorOf(v)
			default:
				return nil, &InvalidTextItemError{Index: i, Reason: fmt.Sprintf("unknown anchor pane %q", it.Anchor)}
			}
			g = &group{anchor: anchor}
			groups[it.Anchor] = g
			order = append(order, it.Anchor)
		}
		if it.Position == Above {
			g.above = append(g.above, it)
		} else {
			g.below = append(g.below, it)
		}
	}

	byOrder := func(a, b TextItem) int { return cmp.Compare(a.Order, b.Order) }
	placed := make([]PlacedText, 0, len(items))
	for _, id := range order {
		g := groups[id]
		margin := g.anchor.Radius * marginRatio
		slices.SortStableFunc(g.above, byOrder)
		slices.SortStableFunc(g.below, byOrder)

		above := make([]PlacedText, len(g.above))
		y := g.anchor.Top - borderWidth - margin
		for i := len(g.above) - 1; i >= 0; i-- {
			it := g.above[i]
			above[i] = PlacedText{Item: it, X: g.anchor.CenterX, Y: y}
			y -= it.FontSize * lineAdvance
		}
		placed = append(placed, above...)

		y = g.anchor.Bottom + borderWidth + margin
		for _, it := range g.below {
			placed = append(placed, PlacedText{Item: it, X: g.anchor.CenterX, Y: y})
			y += it.FontSize * lineAdvance
		}
	}
	return placed, nil
}

// PlaceText lays out items against viewports and draws them onto s, each
// line centered on its anchor. Lines are never wrapped. A nil book uses
// text.DefaultBook.
func PlaceText(s *Surface, items []TextItem, viewports []Viewport, borderWidth float64, book *text.Book) ([]PlacedText, error) {
	placed, err := LayoutText(items, viewports, borderWidth)
	if err != nil {
		return nil, err
	}
	faces, err := resolveFaces(placed, book)
	if err != nil {
		return nil, err
	}
	drawPlaced(s, placed, faces)
	return placed, nil
}

// resolveFaces returns the face of every placed line, nil for empty text.
func resolveFaces(placed []PlacedText, book *text.Book) ([]*text.Face, error) {
	if book == nil {
		book = text.DefaultBook()
	}
	faces := make([]*text.Face, len(placed))
	for i, p := range placed {
		if p.Item.Text == "" {
			continue
		}
		face, err := book.Face(p.Item.FontFamily, p.Item.style(), p.Item.FontSize)
		if err != nil {
			return nil, fmt.Errorf("poster: font %s: %w", p.Item.FontSpec(), err)
		}
		faces[i] = face
	}
	return faces, nil
}

func drawPlaced(s *Surface, placed []PlacedText, faces []*text.Face) {
	for i, p := range placed {
		if faces[i] == nil {
			continue
		}
		text.DrawCentered(s.img, p.Item.Text, faces[i], p.X, p.Y, p.Item.Color.Color())
	}
}
