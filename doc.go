// Package poster renders circular multi-pane poster canvases, such as a
// star chart next to a street map with captions underneath.
//
// # Overview
//
// A render pass is a pure function of its inputs. The caller supplies
// decoded pane images, a layout request and the caption lines; poster
// clears the surface, computes the circle of every pane, composites each
// image into its circle and stacks the captions outward from the panes.
// No state survives between calls.
//
// # Quick Start
//
//	import "github.com/gogpu/poster"
//
//	scene := poster.Scene{
//	    Layout: poster.LayoutRequest{
//	        CanvasWidth:   2000,
//	        CanvasHeight:  1000,
//	        Arrangement:   poster.SideBySide,
//	        RadiusPercent: 60,
//	        PaneOrder:     []poster.PaneID{"stars", "map"},
//	    },
//	    Background: poster.Navy,
//	    Border:     &poster.Border{Width: 4, Color: poster.Gold},
//	    Images:     map[poster.PaneID]image.Image{"stars": stars, "map": streets},
//	    Text: []poster.TextItem{
//	        {Text: "The night we met", FontSize: 48, Color: poster.White, Anchor: poster.CombinedPane},
//	    },
//	}
//	s, _, err := poster.Render(scene)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = s.SavePNG("poster.png")
//
// # Components
//
//   - Layout engine: ComputeLayout turns a LayoutRequest into Viewports
//   - Image compositor: DrawImageInViewport and ClearAndFillBackground
//   - Text layer placer: LayoutText and PlaceText
//
// Render and RenderTo run the three in sequence.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Missing images
//
// A pane whose image is nil renders as an empty circle with its border.
// This is reported in Result.Missing and logged at warning level; it is
// never an error.
package poster
