// Package text provides font resolution, shaping and glyph rasterization
// for poster captions.
//
// The pipeline separates the heavyweight and lightweight parts:
//
//   - Font: a parsed TTF/OTF file, shared and read-only
//   - Book: families of fonts by style, with aliases and fallback
//   - Face: a font at a specific pixel size
//   - Run: shaped glyphs, positioned relative to the pen origin
//
// Shaping uses the HarfBuzz port from github.com/go-text/typesetting.
// Glyph outlines come from golang.org/x/image/font/sfnt and are
// rasterized with golang.org/x/image/vector.
//
// # Example usage
//
//	book := text.DefaultBook()
//	face, err := book.Face("Go", text.Bold, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text.DrawCentered(dst, "The night we met", face, 400, 120, color.White)
package text
