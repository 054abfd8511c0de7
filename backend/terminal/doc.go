// Package terminal draws shape geometry inside a text terminal.
//
// The Renderer rasterises uploaded geometry with golang.org/x/image/vector
// into a canvas twice as tall as the terminal has rows, then paints each
// cell with an upper half block ('▀') whose foreground is the upper pixel
// and whose background is the lower one. The shape keeps a square aspect
// and is centred in the window.
//
// Run drives a shapes.Scene from tcell key events: a/b/c select the family,
// 1-6 select the level, and Esc, q or Ctrl-C quit.
//
// A Renderer created with NewOffscreen has no screen and only fills its
// canvas, which makes it usable as a plain image backend.
package terminal
