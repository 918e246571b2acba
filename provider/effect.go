package provider

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/effect"
)

// Effect is a color treatment applied to a pane image after decoding.
type Effect int

const (
	// EffectNone leaves the image unchanged.
	EffectNone Effect = iota

	// EffectGrayscale converts to luminance.
	EffectGrayscale

	// EffectSepia applies a warm brown tone.
	EffectSepia

	// EffectInvert inverts each color channel.
	EffectInvert
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectGrayscale:
		return "grayscale"
	case EffectSepia:
		return "sepia"
	case EffectInvert:
		return "invert"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// ParseEffect parses an effect name. The empty string is EffectNone.
func ParseEffect(s string) (Effect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return EffectNone, nil
	case "grayscale", "greyscale", "gray", "grey":
		return EffectGrayscale, nil
	case "sepia":
		return EffectSepia, nil
	case "invert":
		return EffectInvert, nil
	default:
		return EffectNone, fmt.Errorf("provider: unknown effect %q", s)
	}
}

// Apply returns img with the effect applied. EffectNone and a nil image
// return img itself.
func (e Effect) Apply(img image.Image) image.Image {
	if img == nil {
		return nil
	}
	switch e {
	case EffectGrayscale:
		return effect.Grayscale(img)
	case EffectSepia:
		return effect.Sepia(img)
	case EffectInvert:
		return effect.Invert(img)
	default:
		return img
	}
}
