package poster

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"testing"
)

// Verify at compile time that Surface implements image.Image.
var _ image.Image = (*Surface)(nil)

func TestNewSurface(t *testing.T) {
	s, err := NewSurface(30, 20)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if s.Width() != 30 || s.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", s.Width(), s.Height())
	}
	if got := s.Pixel(0, 0); got != Transparent {
		t.Errorf("new surface pixel = %v, want transparent", got)
	}
}

func TestNewSurface_Invalid(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewSurface(dims[0], dims[1]); !errors.Is(err, ErrInvalidSurface) {
			t.Errorf("NewSurface(%d, %d) error = %v, want ErrInvalidSurface", dims[0], dims[1], err)
		}
	}
}

func TestSurface_PixelOutOfBounds(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	s.Clear(White)
	for _, p := range []image.Point{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		if got := s.Pixel(p.X, p.Y); got != Transparent {
			t.Errorf("Pixel(%v) = %v, want transparent", p, got)
		}
	}
}

func TestSurface_Encode(t *testing.T) {
	s := newTestSurface(t, 16, 8)
	s.Clear(Gold)

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := FromColor(img.At(3, 3)); !colorNear(got, Gold, 1.0/255) {
		t.Errorf("decoded PNG pixel = %v, want gold", got)
	}

	buf.Reset()
	if err := s.EncodeJPEG(&buf, 500); err != nil {
		t.Fatalf("EncodeJPEG() error = %v", err)
	}
	if _, err := jpeg.Decode(&buf); err != nil {
		t.Fatalf("jpeg.Decode() error = %v", err)
	}
}

func TestSurface_Save(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	s.Clear(Red)
	dir := t.TempDir()
	if err := s.SavePNG(filepath.Join(dir, "out.png")); err != nil {
		t.Errorf("SavePNG() error = %v", err)
	}
	if err := s.SaveJPEG(filepath.Join(dir, "out.jpg"), 90); err != nil {
		t.Errorf("SaveJPEG() error = %v", err)
	}
	if err := s.SavePNG(filepath.Join(dir, "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}
