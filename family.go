package shapes

import (
	"fmt"
	"strings"
)

// Family selects one of the shape generators.
type Family int

const (
	// SquareDiamond draws nested squares with inscribed diamonds.
	SquareDiamond Family = iota
	// Spiral draws a spiral out of short line segments.
	Spiral
	// Sierpinski draws a recursively subdivided triangle.
	Sierpinski

	familyCount
)

var familyNames = [familyCount]string{
	SquareDiamond: "square-diamond",
	Spiral:        "spiral",
	Sierpinski:    "sierpinski",
}

// String returns the lowercase, hyphenated family name.
func (f Family) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Valid reports whether f is a known family.
func (f Family) Valid() bool {
	return f >= 0 && f < familyCount
}

// Mode returns the primitive mode the family's geometry is drawn with.
func (f Family) Mode() Mode {
	if f == Spiral {
		return Lines
	}
	return Triangles
}

// Families returns all families in key order (A, B, C).
func Families() []Family {
	return []Family{SquareDiamond, Spiral, Sierpinski}
}

// ParseFamily parses a family name as returned by String.
// The single-letter key names "a", "b" and "c" are accepted too.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square-diamond", "squarediamond", "square", "a":
		return SquareDiamond, nil
	case "spiral", "b":
		return Spiral, nil
	case "sierpinski", "c":
		return Sierpinski, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFamily, s)
}
