package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// Glyph is a shaped glyph positioned relative to the pen origin, in
// pixels with y pointing down.
type Glyph struct {
	ID      font.GID
	Cluster int
	X, Y    float64
}

// Run is the result of shaping a string.
type Run struct {
	Glyphs    []Glyph
	Advance   float64
	Direction di.Direction
}

// shaperPool pools HarfbuzzShaper instances. A HarfbuzzShaper carries
// internal buffers and must not be used by two goroutines at once.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts s into positioned glyphs using HarfBuzz shaping. The
// paragraph direction is taken from the bidi class of the text, so
// right-to-left captions shape right-to-left.
func Shape(s string, face *Face) Run {
	runes := []rune(s)
	if len(runes) == 0 || face == nil {
		return Run{Direction: di.DirectionLTR}
	}

	dir := paragraphDirection(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(face.font.shaping),
		Size:      face.ppem(),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	run := Run{Glyphs: make([]Glyph, len(output.Glyphs)), Direction: dir}
	var x float64
	for i, g := range output.Glyphs {
		// Offsets are y-up in go-text.
		run.Glyphs[i] = Glyph{
			ID:      g.GlyphID,
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
		}
		x += fixedToFloat(g.Advance)
	}
	run.Advance = x
	return run
}

// paragraphDirection returns RTL when every bidi run of s is
// right-to-left, LTR otherwise.
func paragraphDirection(s string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() != bidi.RightToLeft {
			return di.DirectionLTR
		}
	}
	return di.DirectionRTL
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
