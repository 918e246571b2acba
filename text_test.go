package poster

import (
	"errors"
	"math"
	"testing"
)

func TestTextItem_FontSpec(t *testing.T) {
	tests := []struct {
		item TextItem
		want string
	}{
		{TextItem{FontFamily: "Go", FontSize: 24}, "24px Go"},
		{TextItem{FontFamily: "Go", FontSize: 12.5, Bold: true}, "bold 12.5px Go"},
		{TextItem{FontFamily: "Go Mono", FontSize: 30, Bold: true, Italic: true}, `italic bold 30px "Go Mono"`},
		{TextItem{FontSize: 16, Italic: true}, "italic 16px sans-serif"},
	}
	for _, tt := range tests {
		if got := tt.item.FontSpec(); got != tt.want {
			t.Errorf("FontSpec() = %q, want %q", got, tt.want)
		}
	}
}

func TestParsePosition(t *testing.T) {
	for _, p := range []Position{Below, Above} {
		if got, err := ParsePosition(p.String()); err != nil || got != p {
			t.Errorf("ParsePosition(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePosition("beside"); err == nil {
		t.Error("ParsePosition(beside) should fail")
	}
}

var singlePane = []Viewport{{Pane: "stars", CenterX: 500, CenterY: 500, Radius: 300}}

func TestLayoutText_BelowStacking(t *testing.T) {
	items := []TextItem{
		{Text: "two", FontSize: 20, Order: 2, Anchor: "stars"},
		{Text: "three", FontSize: 30, Order: 3, Anchor: "stars"},
		{Text: "one", FontSize: 10, Order: 1, Anchor: "stars"},
	}
	placed, err := LayoutText(items, singlePane, 5)
	if err != nil {
		t.Fatalf("LayoutText() error = %v", err)
	}
	wantText := []string{"one", "two", "three"}
	wantY := []float64{835, 847, 871}
	for i, p := range placed {
		if p.Item.Text != wantText[i] {
			t.Errorf("line %d = %q, want %q", i, p.Item.Text, wantText[i])
		}
		if absDiff(p.Y, wantY[i]) > geomTolerance {
			t.Errorf("line %d baseline = %v, want %v", i, p.Y, wantY[i])
		}
		if p.X != 500 {
			t.Errorf("line %d x = %v, want 500", i, p.X)
		}
		if i > 0 {
			step := placed[i].Y - placed[i-1].Y
			if step <= 0 || absDiff(step, placed[i-1].Item.FontSize*1.2) > geomTolerance {
				t.Errorf("step %d = %v, want %v", i, step, placed[i-1].Item.FontSize*1.2)
			}
		}
	}
}

func TestLayoutText_AboveStacking(t *testing.T) {
	items := []TextItem{
		{Text: "one", FontSize: 10, Order: 1, Anchor: "stars", Position: Above},
		{Text: "three", FontSize: 30, Order: 3, Anchor: "stars", Position: Above},
		{Text: "two", FontSize: 20, Order: 2, Anchor: "stars", Position: Above},
	}
	placed, err := LayoutText(items, singlePane, 5)
	if err != nil {
		t.Fatalf("LayoutText() error = %v", err)
	}
	// Highest order sits nearest the pane; reading order stays ascending.
	wantText := []string{"one", "two", "three"}
	wantY := []float64{105, 129, 165}
	for i, p := range placed {
		if p.Item.Text != wantText[i] || absDiff(p.Y, wantY[i]) > geomTolerance {
			t.Errorf("line %d = %q at %v, want %q at %v", i, p.Item.Text, p.Y, wantText[i], wantY[i])
		}
	}
}

func TestLayoutText_StableTies(t *testing.T) {
	items := []TextItem{
		{Text: "a", FontSize: 10, Anchor: "stars"},
		{Text: "b", FontSize: 10, Anchor: "stars"},
		{Text: "c", FontSize: 10, Anchor: "stars", Position: Above},
		{Text: "d", FontSize: 10, Anchor: "stars", Position: Above},
	}
	placed, err := LayoutText(items, singlePane, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := ""
	for _, p := range placed {
		got += p.Item.Text
	}
	if got != "cdab" {
		t.Errorf("line order = %q, want cdab", got)
	}
	if placed[0].Y >= placed[1].Y || placed[2].Y >= placed[3].Y {
		t.Error("ties should keep input order top to bottom")
	}
}

func TestLayoutText_ExtremeOrders(t *testing.T) {
	for _, pos := range []Position{Below, Above} {
		t.Run(pos.String(), func(t *testing.T) {
			items := []TextItem{
				{Text: "max", FontSize: 10, Anchor: "stars", Position: pos, Order: math.MaxInt},
				{Text: "min", FontSize: 10, Anchor: "stars", Position: pos, Order: math.MinInt},
				{Text: "zero", FontSize: 10, Anchor: "stars", Position: pos},
			}
			placed, err := LayoutText(items, singlePane, 0)
			if err != nil {
				t.Fatal(err)
			}
			want := []string{"min", "zero", "max"}
			for i, p := range placed {
				if p.Item.Text != want[i] {
					t.Errorf("line %d = %q, want %q", i, p.Item.Text, want[i])
				}
				if i > 0 && p.Y <= placed[i-1].Y {
					t.Errorf("line %d baseline %v not below line %d baseline %v", i, p.Y, i-1, placed[i-1].Y)
				}
			}
		})
	}
}

func TestLayoutText_Combined(t *testing.T) {
	vps, err := ComputeLayout(LayoutRequest{
		CanvasWidth:   2000,
		CanvasHeight:  1000,
		Arrangement:   SideBySide,
		RadiusPercent: 60,
		PaneOrder:     []PaneID{"stars", "map"},
	})
	if err != nil {
		t.Fatal(err)
	}
	items := []TextItem{
		{Text: "shared", FontSize: 40, Anchor: CombinedPane},
		{Text: "left", FontSize: 20, Anchor: "stars", Position: Above},
		{Text: "right", FontSize: 20, Anchor: "map"},
	}
	placed, err := LayoutText(items, vps, 0)
	if err != nil {
		t.Fatalf("LayoutText() error = %v", err)
	}
	if len(placed) != 3 {
		t.Fatalf("placed %d items, want 3", len(placed))
	}
	if p := placed[0]; p.Item.Text != "shared" || p.X != 1000 || absDiff(p.Y, 830) > geomTolerance {
		t.Errorf("combined line = %+v, want centered at 1000 with baseline 830", p)
	}
	if p := placed[1]; p.Item.Text != "left" || absDiff(p.X, 600) > geomTolerance || absDiff(p.Y, 170) > geomTolerance {
		t.Errorf("left line = %+v, want (600, 170)", p)
	}
	if p := placed[2]; p.Item.Text != "right" || absDiff(p.X, 1400) > geomTolerance {
		t.Errorf("right line = %+v, want x 1400", p)
	}
}

func TestLayoutText_Invalid(t *testing.T) {
	tests := []struct {
		name string
		item TextItem
	}{
		{"unknown anchor", TextItem{FontSize: 10, Anchor: "moon"}},
		{"zero size", TextItem{FontSize: 0, Anchor: "stars"}},
		{"negative size", TextItem{FontSize: -4, Anchor: "stars"}},
		{"bad position", TextItem{FontSize: 10, Anchor: "stars", Position: Position(7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []TextItem{{FontSize: 10, Anchor: "stars"}, tt.item}
			_, err := LayoutText(items, singlePane, 0)
			if !errors.Is(err, ErrInvalidTextItem) {
				t.Fatalf("error = %v, want ErrInvalidTextItem", err)
			}
			var terr *InvalidTextItemError
			if !errors.As(err, &terr) || terr.Index != 1 {
				t.Errorf("error = %v, want index 1", err)
			}
		})
	}
	if _, err := LayoutText([]TextItem{{FontSize: 10, Anchor: CombinedPane}}, nil, 0); !errors.Is(err, ErrInvalidTextItem) {
		t.Errorf("combined anchor without panes error = %v, want ErrInvalidTextItem", err)
	}
}

func TestPlaceText_DrawsBelowPane(t *testing.T) {
	s := newTestSurface(t, 400, 400)
	ClearAndFillBackground(s, White)
	vps := []Viewport{{Pane: "stars", CenterX: 200, CenterY: 150, Radius: 100}}
	items := []TextItem{
		{Text: "ORION", FontFamily: "Go", FontSize: 32, Color: Black, Bold: true, Anchor: "stars"},
		{Text: "", FontSize: 20, Anchor: "stars"},
	}

	placed, err := PlaceText(s, items, vps, 0, nil)
	if err != nil {
		t.Fatalf("PlaceText() error = %v", err)
	}
	if len(placed) != 2 {
		t.Fatalf("placed %d lines, want 2", len(placed))
	}

	// Baseline at 150 + 100 + 10 = 260; capitals rise about 23px above it.
	var inkNearBaseline, inkElsewhere int
	for y := range 400 {
		for x := range 400 {
			if s.Pixel(x, y).R > 0.5 {
				continue
			}
			if y >= 220 && y < 263 {
				inkNearBaseline++
			} else {
				inkElsewhere++
			}
		}
	}
	if inkNearBaseline == 0 {
		t.Error("no text ink found above the first baseline")
	}
	if inkElsewhere != 0 {
		t.Errorf("%d text pixels drawn away from the baseline", inkElsewhere)
	}
}

func TestPlaceText_InvalidDrawsNothing(t *testing.T) {
	s := newTestSurface(t, 50, 50)
	ClearAndFillBackground(s, White)
	_, err := PlaceText(s, []TextItem{{Text: "x", FontSize: 10, Anchor: "nowhere"}}, singlePane, 0, nil)
	if !errors.Is(err, ErrInvalidTextItem) {
		t.Fatalf("error = %v, want ErrInvalidTextItem", err)
	}
	if s.Pixel(25, 25) != White {
		t.Error("invalid text items must not draw")
	}
}
