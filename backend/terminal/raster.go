package terminal

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/shapes"
)

// lineHalfWidth is half the width, in pixels, of a stroked line segment.
const lineHalfWidth = 0.5

// canvas is an RGBA image with a square viewport mapped onto NDC.
type canvas struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	side float32
	ox   float32
	oy   float32
}

func newCanvas(w, h int) *canvas {
	c := &canvas{z: vector.NewRasterizer(1, 1)}
	c.resize(w, h)
	return c
}

// resize reallocates the image when the size changed and recentres the
// viewport.
func (c *canvas) resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if c.img == nil || c.img.Rect.Dx() != w || c.img.Rect.Dy() != h {
		c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	side := min(w, h)
	c.side = float32(side)
	c.ox = float32(w-side) / 2
	c.oy = float32(h-side) / 2
}

func (c *canvas) clear(bg image.Image) {
	draw.Draw(c.img, c.img.Rect, bg, image.Point{}, draw.Src)
}

// toPixel maps normalized device coordinates onto the viewport, y up.
func (c *canvas) toPixel(v shapes.Vertex) (float32, float32) {
	return c.ox + (v.X+1)/2*c.side, c.oy + (1-v.Y)/2*c.side
}

// draw rasterises the first count vertices of g.
func (c *canvas) draw(g *shapes.Geometry, mode shapes.Mode, count int) {
	stride := mode.Stride()
	for i := 0; i+stride <= count; i += stride {
		src := image.NewUniform(g.Colors[i].NRGBA())
		if mode == shapes.Lines {
			x0, y0 := c.toPixel(g.Vertices[i])
			x1, y1 := c.toPixel(g.Vertices[i+1])
			c.fill(segmentQuad(x0, y0, x1, y1), src)
			continue
		}
		var pts [3][2]float32
		for k := range pts {
			pts[k][0], pts[k][1] = c.toPixel(g.Vertices[i+k])
		}
		c.fill(pts[:], src)
	}
}

// fill rasterises the polygon pts, restricted to its bounding box.
func (c *canvas) fill(pts [][2]float32, src image.Image) {
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, p := range pts {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	r := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}

	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	c.z.Reset(r.Dx(), r.Dy())
	c.z.MoveTo(pts[0][0]-ox, pts[0][1]-oy)
	for _, p := range pts[1:] {
		c.z.LineTo(p[0]-ox, p[1]-oy)
	}
	c.z.ClosePath()
	c.z.Draw(c.img, r, src, image.Point{})
}

// segmentQuad returns a thin rectangle covering the segment from (x0,y0)
// to (x1,y1). Degenerate segments become a one pixel square.
func segmentQuad(x0, y0, x1, y1 float32) [][2]float32 {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l < 1e-6 {
		return [][2]float32{
			{x0 - lineHalfWidth, y0 - lineHalfWidth},
			{x0 + lineHalfWidth, y0 - lineHalfWidth},
			{x0 + lineHalfWidth, y0 + lineHalfWidth},
			{x0 - lineHalfWidth, y0 + lineHalfWidth},
		}
	}
	nx, ny := -dy/l*lineHalfWidth, dx/l*lineHalfWidth
	return [][2]float32{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}
}

// label draws s in the top-left corner with the basic bitmap face.
func (c *canvas) label(s string) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(2, 2+face.Ascent),
	}
	d.DrawString(s)
}
