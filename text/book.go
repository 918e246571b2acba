package text

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/sfnt"
)

// Style is the weight/slant variant of a family.
type Style uint8

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
	numStyles
)

// StyleOf returns the style for the given bold and italic flags.
func StyleOf(bold, italic bool) Style {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	default:
		return Regular
	}
}

// String returns the CSS-like keyword of the style.
func (s Style) String() string {
	switch s {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold italic"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// ParseStyle parses the keywords returned by Style.String. "normal" and
// the empty string mean Regular.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regular", "normal":
		return Regular, nil
	case "bold":
		return Bold, nil
	case "italic":
		return Italic, nil
	case "bold italic", "bolditalic", "bold-italic":
		return BoldItalic, nil
	}
	return Regular, fmt.Errorf("text: unknown font style %q", s)
}

// fallbacks lists the styles tried, in order, when s is not registered.
func (s Style) fallbacks() []Style {
	switch s {
	case BoldItalic:
		return []Style{BoldItalic, Bold, Italic, Regular}
	case Bold:
		return []Style{Bold, Regular}
	case Italic:
		return []Style{Italic, Regular}
	default:
		return []Style{Regular, Bold, Italic, BoldItalic}
	}
}

// Font is a parsed font file. It holds both the outline parser used for
// rasterization and the go-text font used for shaping, which share glyph
// indices. Font is read-only and safe for concurrent use.
type Font struct {
	name    string
	outline *sfnt.Font
	shaping *font.Font
}

// ParseFont parses TTF or OTF data. The data is not retained.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	src := bytes.Clone(data)

	outline, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	f := &Font{outline: outline, shaping: face.Font}
	if name, err := outline.Name(nil, sfnt.NameIDFamily); err == nil {
		f.name = name
	}
	return f, nil
}

// Name returns the family name stored in the font, if any.
func (f *Font) Name() string {
	return f.name
}

type family struct {
	name  string
	fonts [numStyles]*Font
}

// Book resolves family names and styles to fonts.
//
// Lookups are case-insensitive. A family missing the requested style
// falls back to the closest registered style; an unknown family falls
// back to the book's default family.
//
// Book is safe for concurrent use. Registration is expected to happen
// before rendering starts.
type Book struct {
	mu       sync.RWMutex
	families map[string]*family
	aliases  map[string]string
	fallback string
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{
		families: make(map[string]*family),
		aliases:  make(map[string]string),
	}
}

// Built-in family names.
const (
	FamilyGo          = "Go"
	FamilyGoMono      = "Go Mono"
	FamilyGoSmallcaps = "Go Smallcaps"
)

var (
	defaultBookOnce sync.Once
	defaultBook     *Book
)

// DefaultBook returns a shared book holding the Go font families, with
// "sans-serif" and "serif" aliased to Go and "monospace" to Go Mono.
// Callers must not register fonts into it; use NewBook for custom sets.
func DefaultBook() *Book {
	defaultBookOnce.Do(func() {
		defaultBook = NewBook()
		builtins := []struct {
			family string
			style  Style
			data   []byte
		}{
			{FamilyGo, Regular, goregular.TTF},
			{FamilyGo, Bold, gobold.TTF},
			{FamilyGo, Italic, goitalic.TTF},
			{FamilyGo, BoldItalic, gobolditalic.TTF},
			{FamilyGoMono, Regular, gomono.TTF},
			{FamilyGoMono, Bold, gomonobold.TTF},
			{FamilyGoMono, Italic, gomonoitalic.TTF},
			{FamilyGoMono, BoldItalic, gomonobolditalic.TTF},
			{FamilyGoSmallcaps, Regular, gosmallcaps.TTF},
			{FamilyGoSmallcaps, Italic, gosmallcapsitalic.TTF},
		}
		for _, b := range builtins {
			if err := defaultBook.Register(b.family, b.style, b.data); err != nil {
				panic(fmt.Sprintf("text: built-in font %s %s: %v", b.family, b.style, err))
			}
		}
		defaultBook.Alias("sans-serif", FamilyGo)
		defaultBook.Alias("serif", FamilyGo)
		defaultBook.Alias("monospace", FamilyGoMono)
	})
	return defaultBook
}

// WithDefaults returns a new book holding the built-in families, their
// aliases, and nothing else. It is the starting point for custom books.
func WithDefaults() *Book {
	src := DefaultBook()
	src.mu.RLock()
	defer src.mu.RUnlock()

	b := NewBook()
	for k, fam := range src.families {
		cp := *fam
		b.families[k] = &cp
	}
	for k, v := range src.aliases {
		b.aliases[k] = v
	}
	b.fallback = src.fallback
	return b
}

// Register parses data and adds it to family under style. The first
// family registered becomes the fallback family.
func (b *Book) Register(familyName string, style Style, data []byte) error {
	f, err := ParseFont(data)
	if err != nil {
		return fmt.Errorf("text: register %s %s: %w", familyName, style, err)
	}
	b.Add(familyName, style, f)
	return nil
}

// RegisterFile reads a font file and registers it.
func (b *Book) RegisterFile(familyName string, style Style, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("text: read font file: %w", err)
	}
	return b.Register(familyName, style, data)
}

// Add registers an already parsed font.
func (b *Book) Add(familyName string, style Style, f *Font) {
	if style >= numStyles {
		style = Regular
	}
	key := normalize(familyName)

	b.mu.Lock()
	defer b.mu.Unlock()

	fam, ok := b.families[key]
	if !ok {
		fam = &family{name: familyName}
		b.families[key] = fam
	}
	fam.fonts[style] = f
	if b.fallback == "" {
		b.fallback = key
	}
}

// Alias makes alias resolve to target.
func (b *Book) Alias(alias, target string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.aliases[normalize(alias)] = normalize(target)
}

// SetFallback selects the family used for unknown names.
func (b *Book) SetFallback(familyName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fallback = normalize(familyName)
}

// Families returns the registered family names, sorted.
func (b *Book) Families() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.families))
	for _, fam := range b.families {
		names = append(names, fam.name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether familyName (or an alias of it) is registered.
func (b *Book) Has(familyName string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.lookup(normalize(familyName))
	return ok
}

// Resolve returns the font for familyName and style, applying style and
// family fallback. It returns nil only when the book is empty.
func (b *Book) Resolve(familyName string, style Style) *Font {
	b.mu.RLock()
	defer b.mu.RUnlock()

	key := normalize(familyName)
	fam, ok := b.lookup(key)
	if !ok {
		fam, ok = b.families[b.fallback]
		if !ok {
			return nil
		}
		Logger().Debug("text: unknown font family, using fallback",
			"family", familyName,
			"fallback", fam.name)
	}

	for _, s := range style.fallbacks() {
		if f := fam.fonts[s]; f != nil {
			if s != style {
				Logger().Debug("text: font style not registered, using fallback",
					"family", fam.name,
					"style", style.String(),
					"using", s.String())
			}
			return f
		}
	}
	return nil
}

// Face returns familyName/style at size pixels.
func (b *Book) Face(familyName string, style Style, size float64) (*Face, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	f := b.Resolve(familyName, style)
	if f == nil {
		return nil, ErrNoFonts
	}
	return NewFace(f, size), nil
}

// lookup must be called with b.mu held.
func (b *Book) lookup(key string) (*family, bool) {
	if target, ok := b.aliases[key]; ok {
		key = target
	}
	fam, ok := b.families[key]
	return fam, ok
}

func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, `"'`)
	return strings.ToLower(name)
}
