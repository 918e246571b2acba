package poster

import "github.com/gogpu/poster/text"

// RenderOption configures a Render or RenderTo call.
// Options apply to that call only; nothing is remembered between calls.
//
// Example:
//
//	book := text.WithDefaults()
//	_ = book.RegisterFile("Playfair", text.Regular, "Playfair.ttf")
//	s, res, err := poster.Render(scene, poster.WithFontBook(book))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration of a render call.
type renderOptions struct {
	book   *text.Book
	interp InterpolationMode
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		book:   nil, // text.DefaultBook when nil
		interp: InterpBicubic,
	}
}

// WithFontBook sets the fonts used to draw text items.
func WithFontBook(b *text.Book) RenderOption {
	return func(o *renderOptions) {
		o.book = b
	}
}

// WithInterpolation sets how pane images are resampled.
func WithInterpolation(m InterpolationMode) RenderOption {
	return func(o *renderOptions) {
		o.interp = m
	}
}
