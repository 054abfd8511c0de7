// Package backend is a registry of offscreen shape renderers.
//
// Renderers that draw into an in-memory image register a factory under a
// name from their package's init function, so importing a renderer package
// for side effects makes it selectable:
//
//	import (
//	    "github.com/gogpu/shapes/backend"
//	    _ "github.com/gogpu/shapes/backend/software"
//	    _ "github.com/gogpu/shapes/backend/terminal"
//	)
//
//	r, err := backend.Get(backend.Software, 512)
//
// Default picks the first registered renderer in priority order: the
// antialiased gg rasteriser, then the terminal's vector rasteriser.
//
// The window renderer in backend/gpu needs a live device and surface, so it
// is constructed directly instead of through this registry.
package backend
