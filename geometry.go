package shapes

import (
	"image/color"
	"math"
)

// Mode is the primitive topology used to interpret a Geometry.
type Mode int

const (
	// Triangles interprets every three vertices as a filled triangle.
	Triangles Mode = iota
	// Lines interprets every two vertices as a line segment.
	Lines
)

func (m Mode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// Stride returns the number of vertices per primitive.
func (m Mode) Stride() int {
	if m == Lines {
		return 2
	}
	return 3
}

// Vertex is a position in normalized device coordinates.
// Generators keep vertices close to [-1, 1] but do not clamp them.
type Vertex struct {
	X, Y float32
}

// V is shorthand for Vertex{x, y}.
func V(x, y float32) Vertex {
	return Vertex{X: x, Y: y}
}

// Midpoint returns the point halfway between v and w.
func (v Vertex) Midpoint(w Vertex) Vertex {
	return Vertex{X: (v.X + w.X) / 2, Y: (v.Y + w.Y) / 2}
}

// Color is an RGB color with float channels. Channels are not clamped:
// iterative color drift may leave [0, 1], and only display code clamps.
type Color struct {
	R, G, B float32
}

// RGB is shorthand for Color{r, g, b}.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// White is the hole color of the Sierpinski pattern and the spiral's start.
var White = Color{1, 1, 1}

// Darken subtracts d from every channel without clamping.
func (c Color) Darken(d float32) Color {
	return Color{R: c.R - d, G: c.G - d, B: c.B - d}
}

// NRGBA converts c to an opaque 8-bit color, clamping each channel to [0, 1].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clamp255(c.R),
		G: clamp255(c.G),
		B: clamp255(c.B),
		A: 255,
	}
}

func clamp255(v float32) uint8 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}

// Geometry is the output of a generator: positions paired by index with
// colors, plus the primitive mode used to draw them.
type Geometry struct {
	Vertices []Vertex
	Colors   []Color
	Mode     Mode
}

func newGeometry(mode Mode, capacity int) *Geometry {
	return &Geometry{
		Vertices: make([]Vertex, 0, capacity),
		Colors:   make([]Color, 0, capacity),
		Mode:     mode,
	}
}

// add appends vs, each paired with c.
func (g *Geometry) add(c Color, vs ...Vertex) {
	for _, v := range vs {
		g.Vertices = append(g.Vertices, v)
		g.Colors = append(g.Colors, c)
	}
}

// Len returns the vertex count.
func (g *Geometry) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Vertices)
}

// Primitives returns the number of complete triangles or line segments.
func (g *Geometry) Primitives() int {
	return g.Len() / g.Mode.Stride()
}

// Clone returns a deep copy of g.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	return &Geometry{
		Vertices: append([]Vertex(nil), g.Vertices...),
		Colors:   append([]Color(nil), g.Colors...),
		Mode:     g.Mode,
	}
}

// Equal reports whether g and o hold identical vertex and color sequences
// and the same mode.
func (g *Geometry) Equal(o *Geometry) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Mode != o.Mode || len(g.Vertices) != len(o.Vertices) || len(g.Colors) != len(o.Colors) {
		return false
	}
	for i := range g.Vertices {
		if g.Vertices[i] != o.Vertices[i] {
			return false
		}
	}
	for i := range g.Colors {
		if g.Colors[i] != o.Colors[i] {
			return false
		}
	}
	return true
}

// Positions returns the vertices as interleaved x, y floats.
func (g *Geometry) Positions() []float32 {
	out := make([]float32, 0, 2*len(g.Vertices))
	for _, v := range g.Vertices {
		out = append(out, v.X, v.Y)
	}
	return out
}

// ColorData returns the colors as interleaved r, g, b floats.
func (g *Geometry) ColorData() []float32 {
	out := make([]float32, 0, 3*len(g.Colors))
	for _, c := range g.Colors {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}
