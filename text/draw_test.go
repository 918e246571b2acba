package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"
)

func whiteCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

// inkBounds returns the bounding box of pixels that are not white.
func inkBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestDraw_InkWithinReturnedRect(t *testing.T) {
	img := whiteCanvas(300, 100)
	face := testFace(t, 40)

	touched := Draw(img, "Vega", face, 20, 60, color.Black)
	ink := inkBounds(img)

	if ink.Empty() {
		t.Fatal("Draw() produced no ink")
	}
	if !ink.In(touched) {
		t.Errorf("ink %v escapes the returned rect %v", ink, touched)
	}
	// Cap height sits above the baseline, nothing much below it.
	if ink.Min.Y >= 60 || ink.Max.Y > 60+int(face.Metrics().Descent)+2 {
		t.Errorf("ink %v not aligned on baseline 60", ink)
	}
	if ink.Min.X < 18 {
		t.Errorf("ink starts at %d, before the pen origin", ink.Min.X)
	}
}

func TestDrawCentered(t *testing.T) {
	img := whiteCanvas(400, 100)
	DrawCentered(img, "HOH", testFace(t, 40), 200, 70, color.Black)

	ink := inkBounds(img)
	if ink.Empty() {
		t.Fatal("DrawCentered() produced no ink")
	}
	center := float64(ink.Min.X+ink.Max.X) / 2
	if math.Abs(center-200) > 4 {
		t.Errorf("ink center = %v, want about 200 (ink %v)", center, ink)
	}
}

func TestDraw_Color(t *testing.T) {
	img := whiteCanvas(200, 100)
	Draw(img, "I", testFace(t, 80), 50, 85, color.RGBA{R: 255, A: 255})
	ink := inkBounds(img)
	// The middle of the stem is fully covered.
	mid := img.RGBAAt((ink.Min.X+ink.Max.X)/2, (ink.Min.Y+ink.Max.Y)/2)
	if mid != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("stem pixel = %v, want opaque red", mid)
	}
}

func TestDraw_EmptyAndOffCanvas(t *testing.T) {
	img := whiteCanvas(50, 50)
	face := testFace(t, 20)
	if r := Draw(img, "", face, 10, 30, color.Black); !r.Empty() {
		t.Errorf("Draw(\"\") touched %v", r)
	}
	if r := Draw(img, "far away", face, 5000, 5000, color.Black); !r.Empty() {
		t.Errorf("off-canvas Draw touched %v", r)
	}
	if !inkBounds(img).Empty() {
		t.Error("canvas should stay white")
	}
}

func TestDraw_Styles(t *testing.T) {
	regular := whiteCanvas(300, 80)
	bold := whiteCanvas(300, 80)
	face, _ := DefaultBook().Face(FamilyGo, Bold, 40)
	Draw(regular, "Night", testFace(t, 40), 10, 60, color.Black)
	Draw(bold, "Night", face, 10, 60, color.Black)

	if countInk(bold) <= countInk(regular) {
		t.Error("bold text should cover more pixels than regular")
	}
}

func countInk(img *image.RGBA) int {
	n := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] < 128 {
			n++
		}
	}
	return n
}
