package shapes

// GeneratorFunc builds the geometry of one family at a valid level.
// Generators are pure: the same level always yields identical output.
type GeneratorFunc func(Level) *Geometry

var generators [familyCount]GeneratorFunc

// register installs the generator for f. Called from init in each
// generator's file.
func register(f Family, fn GeneratorFunc) {
	if generators[f] != nil {
		panic("shapes: generator registered twice for " + f.String())
	}
	generators[f] = fn
}

// Generate returns the geometry for family f at level l.
func Generate(f Family, l Level) (*Geometry, error) {
	if !f.Valid() {
		return nil, ErrInvalidFamily
	}
	if !l.Valid() {
		return nil, ErrInvalidLevel
	}
	return generators[f](l), nil
}

// VertexCount returns the number of vertices Generate(f, l) would emit,
// without generating anything. It returns 0 for invalid input.
func VertexCount(f Family, l Level) int {
	if !f.Valid() || !l.Valid() {
		return 0
	}
	switch f {
	case SquareDiamond:
		return 12 * int(l)
	case Spiral:
		return SpiralVertexCount(l)
	default:
		return 12 * SierpinskiGroups(l)
	}
}
