// Package shapes generates and displays three procedural 2D shape
// families at six levels of detail.
//
// # Overview
//
// The three families are:
//   - SquareDiamond: nested squares with inscribed diamonds, drawn as triangles
//   - Spiral: a spiral of short line segments with a cycling color gradient
//   - Sierpinski: a recursively subdivided triangle with drifting corner colors
//
// Generation is a pure function of (Family, Level). A Scene holds the
// active configuration and the buffer uploaded to a Backend; a Controller
// maps key presses (A, B, C and 1 to 6) onto the scene.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/shapes"
//	    "github.com/gogpu/shapes/backend/software"
//	)
//
//	r := software.New()
//	scene, err := shapes.NewScene(r, shapes.WithFamily(shapes.Sierpinski), shapes.WithLevel(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer scene.Close()
//
//	scene.Draw()
//	r.SavePNG("sierpinski.png")
//
// # Backends
//
// Three backends implement the Backend interface:
//   - backend/gpu: gogpu/wgpu render pipelines drawing into a window surface
//   - backend/software: a gogpu/gg raster context, for PNG output and tests
//   - backend/terminal: a tcell screen painted with half-block cells
//
// # Coordinate System
//
// Vertices are in normalized device coordinates:
//   - Origin (0,0) at the center
//   - X increases right, Y increases up
//   - The visible range is [-1, 1] on both axes
//
// # Colors
//
// Generators never clamp colors. Channels outside [0, 1] are clamped by
// backends at display time.
package shapes

// Version is the current version of the module.
const Version = "0.1.0"
