package shapes

// Base colors of the outermost square and diamond, and the amount every
// channel darkens by per nesting step.
var (
	squareBase   = RGB(0.42, 0.1, 0.7)
	diamondBase  = RGB(0.58, 0.9, 0.3)
	squareDarken = float32(0.08)
)

func init() {
	register(SquareDiamond, GenerateSquareDiamond)
}

// GenerateSquareDiamond returns level nested square/diamond pairs.
// Step i is scaled by 1/2^i about the origin. Each square and each diamond
// is two triangles sharing one flat color, darkened by 0.08 per step.
// Colors are not clamped and go negative at high levels.
func GenerateSquareDiamond(level Level) *Geometry {
	n := int(level)
	g := newGeometry(Triangles, 12*n)

	square, diamond := squareBase, diamondBase
	f := float32(1)
	for i := 0; i < n; i++ {
		if i > 0 {
			square = square.Darken(squareDarken)
			diamond = diamond.Darken(squareDarken)
			f /= 2
		}
		g.add(square,
			V(-f, -f), V(f, f), V(f, -f),
			V(-f, -f), V(f, f), V(-f, f),
		)
		g.add(diamond,
			V(0, -f), V(f, 0), V(0, f),
			V(0, -f), V(-f, 0), V(0, f),
		)
	}
	return g
}
