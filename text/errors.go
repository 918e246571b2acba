package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a face is requested with a
	// non-positive size.
	ErrInvalidSize = errors.New("text: font size must be positive")

	// ErrNoFonts is returned when a Book has no font to fall back to.
	ErrNoFonts = errors.New("text: book has no fonts")
)
