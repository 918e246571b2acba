package config

import (
	"fmt"
	"image"

	"github.com/gogpu/poster"
	"github.com/gogpu/poster/provider"
	"github.com/gogpu/poster/text"
)

// Layout returns the layout request described by the settings.
func (s *Settings) Layout() (poster.LayoutRequest, error) {
	arr, err := poster.ParseArrangement(s.Arrangement)
	if err != nil {
		return poster.LayoutRequest{}, fmt.Errorf("config: %w", err)
	}
	w, h := s.Canvas.Width, s.Canvas.Height
	if s.Canvas.AutoOrient {
		w, h = poster.Orient(w, h, arr)
	}
	order := make([]poster.PaneID, len(s.Panes))
	for i, p := range s.Panes {
		order[i] = poster.PaneID(p.ID)
	}
	return poster.LayoutRequest{
		CanvasWidth:    w,
		CanvasHeight:   h,
		Arrangement:    arr,
		RadiusPercent:  s.Radius,
		OverlapPercent: s.Overlap,
		PaneOrder:      order,
	}, nil
}

// Scene builds the scene to render with the given pane images. Panes
// without an image render empty.
func (s *Settings) Scene(images map[poster.PaneID]image.Image) (poster.Scene, error) {
	req, err := s.Layout()
	if err != nil {
		return poster.Scene{}, err
	}
	bg, err := colorOr(s.Background, poster.White)
	if err != nil {
		return poster.Scene{}, fmt.Errorf("config: background: %w", err)
	}
	sc := poster.Scene{
		Layout:     req,
		Background: bg,
		Images:     images,
	}
	if s.Border != nil {
		c, err := colorOr(s.Border.Color, poster.Black)
		if err != nil {
			return poster.Scene{}, fmt.Errorf("config: border: %w", err)
		}
		sc.Border = &poster.Border{Width: s.Border.Width, Color: c}
	}
	for i, tc := range s.Text {
		item, err := tc.item()
		if err != nil {
			return poster.Scene{}, fmt.Errorf("config: text[%d]: %w", i, err)
		}
		sc.Text = append(sc.Text, item)
	}
	return sc, nil
}

func (tc TextConfig) item() (poster.TextItem, error) {
	c, err := colorOr(tc.Color, poster.Black)
	if err != nil {
		return poster.TextItem{}, err
	}
	pos, err := poster.ParsePosition(tc.Position)
	if err != nil {
		return poster.TextItem{}, err
	}
	anchor := poster.PaneID(tc.Anchor)
	if anchor == "" {
		anchor = poster.CombinedPane
	}
	return poster.TextItem{
		Text:       tc.Text,
		FontFamily: tc.Font,
		FontSize:   tc.Size,
		Color:      c,
		Bold:       tc.Bold,
		Italic:     tc.Italic,
		Order:      tc.Order,
		Anchor:     anchor,
		Position:   pos,
	}, nil
}

func colorOr(s string, def poster.RGBA) (poster.RGBA, error) {
	if s == "" {
		return def, nil
	}
	return poster.ParseColor(s)
}

// PaneSources returns the image sources of all panes with resolved paths.
func (s *Settings) PaneSources() ([]provider.PaneSource, error) {
	sources := make([]provider.PaneSource, 0, len(s.Panes))
	for _, p := range s.Panes {
		effect, err := provider.ParseEffect(p.Effect)
		if err != nil {
			return nil, fmt.Errorf("config: pane %q: %w", p.ID, err)
		}
		path, err := s.ResolvePath(p.Image)
		if err != nil {
			return nil, err
		}
		sources = append(sources, provider.PaneSource{
			Pane:   poster.PaneID(p.ID),
			Path:   path,
			Effect: effect,
		})
	}
	return sources, nil
}

// FontBook returns the shared default book when no fonts are configured,
// and otherwise a new book holding the built-in families plus every
// configured font. A font marked fallback replaces Go as the family used
// for unknown names.
func (s *Settings) FontBook() (*text.Book, error) {
	if len(s.Fonts) == 0 {
		return text.DefaultBook(), nil
	}
	book := text.WithDefaults()
	for _, f := range s.Fonts {
		style, err := text.ParseStyle(f.Style)
		if err != nil {
			return nil, fmt.Errorf("config: font %q: %w", f.Family, err)
		}
		path, err := s.ResolvePath(f.Path)
		if err != nil {
			return nil, err
		}
		if err := book.RegisterFile(f.Family, style, path); err != nil {
			return nil, fmt.Errorf("config: font %q: %w", f.Family, err)
		}
		if f.Fallback {
			book.SetFallback(f.Family)
		}
	}
	return book, nil
}

// WatchPaths returns the files a rendered poster depends on: the settings
// file, pane images and font files.
func (s *Settings) WatchPaths() []string {
	var paths []string
	if s.path != "" {
		paths = append(paths, s.path)
	}
	for _, p := range s.Panes {
		if path, err := s.ResolvePath(p.Image); err == nil && path != "" {
			paths = append(paths, path)
		}
	}
	for _, f := range s.Fonts {
		if path, err := s.ResolvePath(f.Path); err == nil && path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}
