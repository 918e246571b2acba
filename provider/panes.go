package provider

import (
	"image"
	"log/slog"

	"github.com/gogpu/poster"
)

// PaneSource names the file and effect for one pane.
type PaneSource struct {
	Pane   poster.PaneID
	Path   string
	Effect Effect
}

// LoadPanes loads every source into a map keyed by pane. Sources with an
// empty path or a load error are logged at Warn and omitted. A nil logger
// uses poster.Logger.
func LoadPanes(sources []PaneSource, logger *slog.Logger) map[poster.PaneID]image.Image {
	if logger == nil {
		logger = poster.Logger()
	}
	images := make(map[poster.PaneID]image.Image, len(sources))
	for _, src := range sources {
		if src.Path == "" {
			logger.Warn("pane has no image path", "pane", src.Pane)
			continue
		}
		img, err := Load(src.Path)
		if err != nil {
			logger.Warn("pane image not loaded", "pane", src.Pane, "path", src.Path, "err", err)
			continue
		}
		images[src.Pane] = src.Effect.Apply(img)
		logger.Debug("pane image loaded", "pane", src.Pane, "path", src.Path,
			"size", img.Bounds().Size(), "effect", src.Effect)
	}
	return images
}
