package shapes

import (
	"errors"
	"image/color"
	"testing"
)

func TestLevels(t *testing.T) {
	ls := Levels()
	if len(ls) != 6 || ls[0] != MinLevel || ls[5] != MaxLevel {
		t.Errorf("Levels() = %v, want 1..6", ls)
	}
	for _, l := range []Level{0, -1, 7} {
		if l.Valid() {
			t.Errorf("Level(%d).Valid() = true", l)
		}
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		in   string
		want Family
	}{
		{"square-diamond", SquareDiamond},
		{"A", SquareDiamond},
		{" spiral ", Spiral},
		{"b", Spiral},
		{"Sierpinski", Sierpinski},
		{"c", Sierpinski},
	}
	for _, tt := range tests {
		got, err := ParseFamily(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFamily(%q) = (%v, %v), want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFamily("hexagon"); !errors.Is(err, ErrInvalidFamily) {
		t.Errorf("ParseFamily(hexagon) error = %v, want ErrInvalidFamily", err)
	}
	for _, f := range Families() {
		got, err := ParseFamily(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFamily(%v.String()) = (%v, %v)", f, got, err)
		}
	}
}

func TestFamilyMode(t *testing.T) {
	want := map[Family]Mode{SquareDiamond: Triangles, Spiral: Lines, Sierpinski: Triangles}
	for f, m := range want {
		if f.Mode() != m {
			t.Errorf("%v.Mode() = %v, want %v", f, f.Mode(), m)
		}
	}
	if s := Family(7).String(); s != "Family(7)" {
		t.Errorf("Family(7).String() = %q", s)
	}
}

func TestColorNRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.NRGBA
	}{
		{"white", White, color.NRGBA{255, 255, 255, 255}},
		{"negative clamps to zero", RGB(-0.3, 0.5, 1.7), color.NRGBA{0, 128, 255, 255}},
		{"purple", RGB(0.42, 0.1, 0.7), color.NRGBA{107, 26, 178, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeometryFlatData(t *testing.T) {
	g := newGeometry(Lines, 2)
	g.add(RGB(1, 0.5, 0), V(0, 1), V(-1, 0.5))

	wantPos := []float32{0, 1, -1, 0.5}
	wantCol := []float32{1, 0.5, 0, 1, 0.5, 0}
	pos, col := g.Positions(), g.ColorData()
	for i := range wantPos {
		if pos[i] != wantPos[i] {
			t.Errorf("Positions()[%d] = %v, want %v", i, pos[i], wantPos[i])
		}
	}
	for i := range wantCol {
		if col[i] != wantCol[i] {
			t.Errorf("ColorData()[%d] = %v, want %v", i, col[i], wantCol[i])
		}
	}
	if g.Primitives() != 1 {
		t.Errorf("Primitives() = %d, want 1", g.Primitives())
	}
}

func TestGeometryClone(t *testing.T) {
	g := GenerateSquareDiamond(1)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("Clone() not equal to original")
	}
	c.Vertices[0] = V(9, 9)
	if g.Vertices[0] == c.Vertices[0] {
		t.Error("Clone() shares vertex storage")
	}
	var nilGeom *Geometry
	if nilGeom.Clone() != nil || nilGeom.Len() != 0 {
		t.Error("nil geometry Clone/Len misbehave")
	}
}
