// Package provider loads pane images for poster scenes.
//
// Files are sniffed by content rather than extension. PNG, JPEG, GIF,
// BMP, TIFF and WebP are decoded; anything else is rejected with
// ErrUnsupportedFormat. An optional Effect (grayscale, sepia, invert) can
// be applied after decoding.
//
// LoadPanes never fails as a whole: a pane whose file cannot be loaded is
// logged and left out of the result, and poster renders it as an empty
// bordered circle.
package provider
