package shapes

// sierpinskiBase is the outermost triangle: bottom-left, bottom-right, top.
var sierpinskiBase = [3]Vertex{V(-0.8, -0.6), V(0.8, -0.6), V(0, 0.8)}

func init() {
	register(Sierpinski, GenerateSierpinski)
}

// SierpinskiGroups returns the number of subdivided triangles at level,
// (3^level - 1) / 2. Each group emits four triangles.
func SierpinskiGroups(level Level) int {
	p := 1
	for range int(level) {
		p *= 3
	}
	return (p - 1) / 2
}

// GenerateSierpinski returns a recursively subdivided triangle. Every
// subdivision emits its white midpoint "hole" followed by its left, right
// and top corner triangles, then recurses into the three corners until
// the recursion depth reaches level. Holes are drawn, not left empty.
func GenerateSierpinski(level Level) *Geometry {
	w := &sierpinskiWalk{
		g:       newGeometry(Triangles, 12*SierpinskiGroups(level)),
		palette: newSierpinskiPalette(level),
		max:     int(level),
	}
	w.subdivide(sierpinskiBase[0], sierpinskiBase[1], sierpinskiBase[2], 1)
	return w.g
}

// sierpinskiWalk pairs positions and colors in a single depth-first pass
// so each triangle takes the palette entry of the group that emitted it.
type sierpinskiWalk struct {
	g       *Geometry
	palette *sierpinskiPalette
	max     int
}

func (w *sierpinskiWalk) subdivide(p1, p2, p3 Vertex, depth int) {
	m12 := p1.Midpoint(p2)
	m23 := p3.Midpoint(p2)
	m13 := p3.Midpoint(p1)

	red, cyan, blue := w.palette.colors()
	w.g.add(White, m12, m23, m13)
	w.g.add(red, p1, m12, m13)
	w.g.add(cyan, m12, p2, m23)
	w.g.add(blue, m13, m23, p3)
	w.palette.advance()

	if depth < w.max {
		w.subdivide(p1, m12, m13, depth+1)
		w.subdivide(m12, p2, m23, depth+1)
		w.subdivide(p3, m23, m13, depth+1)
	}
}

// sierpinskiPalette holds the three drifting corner colors. The drift
// amount is 1/(72*level); the cyan and blue accumulators also swing by
// 0.1 with alternating sign from group to group.
type sierpinskiPalette struct {
	red, cyan, blue Color
	factor          float64
	group           int
}

func newSierpinskiPalette(level Level) *sierpinskiPalette {
	return &sierpinskiPalette{
		red:    RGB(0.9, 0, 0.3),
		cyan:   RGB(0, 0.7, 0.5),
		blue:   RGB(0.5, 0, 1),
		factor: float64(float32(1) / (float32(level) * 72)),
	}
}

func (p *sierpinskiPalette) colors() (red, cyan, blue Color) {
	return p.red, p.cyan, p.blue
}

func (p *sierpinskiPalette) advance() {
	f := p.factor
	swing := 0.1
	if p.group%2 == 1 {
		swing = -0.1
	}

	p.red.R = float32(float64(p.red.R) - f*f)
	p.red.G = float32(float64(p.red.G) + f)
	p.red.B = float32(float64(p.red.B) + f/2)

	p.cyan.R = float32(float64(p.cyan.R) + f)
	p.cyan.G = float32(float64(p.cyan.R) - (f + swing))
	p.cyan.B = float32(float64(p.cyan.B) + f/2)

	p.blue.R = float32(float64(p.blue.R) + (f + swing))
	p.blue.G = float32(float64(p.blue.G) + f)
	p.blue.B = float32(float64(p.blue.G) - f/4)

	p.group++
}
