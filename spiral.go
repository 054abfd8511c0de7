package shapes

import "math"

const (
	// spiralSegments is the parametric range per level.
	spiralSegments = 400
	// spiralSample is the parameter increment between segments.
	spiralSample = 0.25
	// spiralTick is the length of each emitted segment.
	spiralTick = 0.01
	// spiralColorSweep scales how far the color walker travels per level.
	spiralColorSweep = 3.5
)

func init() {
	register(Spiral, GenerateSpiral)
}

// SpiralVertexCount returns the number of vertices GenerateSpiral emits.
func SpiralVertexCount(level Level) int {
	perSweep := int(float64(spiralSegments*int(level)) / spiralSample)
	return 2 * perSweep * int(level)
}

// GenerateSpiral returns a spiral drawn as short line segments. The sweep
// turns (level - 0.5) times and is emitted level times over. Colors walk
// from white through the red, green and blue channels one vertex at a time.
func GenerateSpiral(level Level) *Geometry {
	n := SpiralVertexCount(level)
	g := newGeometry(Lines, n)

	segments := float32(spiralSegments * int(level))
	turns := float64(level) - 0.5
	for range int(level) {
		for j := float32(0); j < segments; j += spiralSample {
			theta := float32(turns * 2 * math.Pi * float64(j) / float64(segments))
			cos := float32(math.Cos(float64(theta)))
			sin := float32(math.Sin(float64(theta)))
			r := j / segments
			p1 := V(-r*cos, r*sin)
			p2 := V(p1.X-spiralTick*cos, p1.Y+spiralTick*sin)
			g.Vertices = append(g.Vertices, p1, p2)
		}
	}

	w := newSpiralWalker(spiralColorSweep * float32(level) / float32(len(g.Vertices)))
	for range g.Vertices {
		g.Colors = append(g.Colors, w.next())
	}
	return g
}

// spiralWalker drifts one channel at a time, rotating red, green, blue.
// The direction flips each time the blue channel saturates.
type spiralWalker struct {
	c         Color
	channel   int
	direction float32
	step      float32
}

func newSpiralWalker(step float32) *spiralWalker {
	return &spiralWalker{c: White, direction: -1, step: step}
}

// next advances the walker and returns the new color.
func (w *spiralWalker) next() Color {
	ch := w.channelPtr()
	*ch += w.direction * w.step
	switch {
	case *ch > 1:
		*ch = 1
		w.advance()
	case *ch < 0:
		*ch = 0
		w.advance()
	}
	return w.c
}

func (w *spiralWalker) channelPtr() *float32 {
	switch w.channel {
	case 0:
		return &w.c.R
	case 1:
		return &w.c.G
	default:
		return &w.c.B
	}
}

func (w *spiralWalker) advance() {
	w.channel = (w.channel + 1) % 3
	if w.channel == 0 {
		w.direction = -w.direction
	}
}
