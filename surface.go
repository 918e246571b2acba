package poster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Surface errors.
var (
	// ErrInvalidSurface is returned when a surface is created with a
	// non-positive width or height.
	ErrInvalidSurface = errors.New("poster: surface dimensions must be positive")

	// ErrSurfaceMismatch is returned when a surface does not match the
	// canvas size of the scene rendered into it.
	ErrSurfaceMismatch = errors.New("poster: surface size does not match canvas")
)

// Surface is the raster drawing target of a render pass.
// Pixels are stored premultiplied in an *image.RGBA.
//
// A Surface must not be mutated concurrently with an active render call.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates a transparent surface with the given dimensions.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSurface, width, height)
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Image returns the backing image. The returned image aliases the
// surface pixels.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear fills the entire surface with c, replacing existing pixels.
func (s *Surface) Clear(c RGBA) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// Pixel returns the unpremultiplied color of a single pixel, or
// Transparent when (x, y) is outside the surface.
func (s *Surface) Pixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return Transparent
	}
	return FromColor(s.img.RGBAAt(x, y))
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// EncodePNG encodes the surface as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("poster: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the surface as JPEG with the given quality (1-100).
func (s *Surface) EncodeJPEG(w io.Writer, quality int) error {
	quality = min(max(quality, 1), 100)
	if err := jpeg.Encode(w, s.img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("poster: encode JPEG: %w", err)
	}
	return nil
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.save(path, s.EncodePNG)
}

// SaveJPEG saves the surface to a JPEG file.
func (s *Surface) SaveJPEG(path string, quality int) error {
	return s.save(path, func(w io.Writer) error { return s.EncodeJPEG(w, quality) })
}

func (s *Surface) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("poster: create file: %w", err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
