package software

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/shapes"
)

// captionMargin is the caption's distance from the top-left corner.
const captionMargin = 4

var (
	fontOnce sync.Once
	fontData *opentype.Font
	fontErr  error
)

func regularFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		fontData, fontErr = opentype.Parse(goregular.TTF)
	})
	return fontData, fontErr
}

// Renderer is a CPU shapes.Backend drawing into a gg pixmap.
//
// Renderer is not safe for concurrent use; like the rest of the demo it is
// driven from a single loop.
type Renderer struct {
	opts    options
	table   shapes.BufferTable
	dc      *gg.Context
	caption string
	face    font.Face
	closed  bool
}

var _ shapes.Backend = (*Renderer)(nil)

// New creates a Renderer with a cleared canvas.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{
		opts: o,
		dc:   gg.NewContext(o.size, o.size),
	}
	r.dc.ClearWithColor(o.background)
	return r
}

// Size returns the canvas edge length in pixels.
func (r *Renderer) Size() int { return r.opts.size }

// Upload stores a copy of g and returns its handle.
func (r *Renderer) Upload(g *shapes.Geometry) (shapes.Buffer, error) {
	if r.closed {
		return 0, shapes.ErrClosed
	}
	if g == nil {
		return 0, &shapes.GraphicsError{Op: "upload", Err: fmt.Errorf("nil geometry")}
	}
	return r.table.Put(g), nil
}

// Release forgets the geometry behind b.
func (r *Renderer) Release(b shapes.Buffer) {
	r.table.Delete(b)
}

// Live returns the number of uploaded buffers not yet released.
func (r *Renderer) Live() int { return r.table.Len() }

// SetCaption sets the text painted in the top-left corner on every draw.
// An empty caption disables it.
func (r *Renderer) SetCaption(s string) { r.caption = s }

// Draw clears the canvas and rasterises the first count vertices of b.
// The zero Buffer only clears.
func (r *Renderer) Draw(b shapes.Buffer, mode shapes.Mode, count int) error {
	if r.closed {
		return shapes.ErrClosed
	}
	r.dc.ClearWithColor(r.opts.background)

	if b != 0 {
		g, ok := r.table.Get(b)
		if !ok {
			return &shapes.GraphicsError{Op: "draw", Err: fmt.Errorf("%w: %d", shapes.ErrUnknownBuffer, b)}
		}
		if count > g.Len() || count < 0 {
			count = g.Len()
		}
		if err := r.rasterize(g, mode, count); err != nil {
			return &shapes.GraphicsError{Op: "draw", Err: err}
		}
	}

	if r.caption != "" {
		if err := r.drawCaption(); err != nil {
			return &shapes.GraphicsError{Op: "caption", Err: err}
		}
	}
	return nil
}

func (r *Renderer) rasterize(g *shapes.Geometry, mode shapes.Mode, count int) error {
	stride := mode.Stride()
	if mode == shapes.Lines {
		r.dc.SetLineWidth(1)
	}
	for i := 0; i+stride <= count; i += stride {
		r.dc.ClearPath()
		r.dc.SetColor(g.Colors[i].NRGBA())
		x, y := r.toPixel(g.Vertices[i])
		r.dc.MoveTo(x, y)
		for _, v := range g.Vertices[i+1 : i+stride] {
			x, y = r.toPixel(v)
			r.dc.LineTo(x, y)
		}
		var err error
		if mode == shapes.Lines {
			err = r.dc.Stroke()
		} else {
			r.dc.ClosePath()
			err = r.dc.Fill()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// toPixel maps normalized device coordinates onto the canvas, y up.
func (r *Renderer) toPixel(v shapes.Vertex) (float64, float64) {
	s := float64(r.opts.size)
	return (float64(v.X) + 1) / 2 * s, (1 - float64(v.Y)) / 2 * s
}

func (r *Renderer) drawCaption() error {
	if r.face == nil {
		f, err := regularFont()
		if err != nil {
			return err
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    captionSize(r.opts.size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return err
		}
		r.face = face
	}

	m := r.face.Metrics()
	width := font.MeasureString(r.face, r.caption).Ceil()
	height := (m.Ascent + m.Descent).Ceil()
	if width <= 0 || height <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: r.face,
		Dot:  fixed.Point26_6{Y: m.Ascent},
	}
	d.DrawString(r.caption)
	r.dc.DrawImage(gg.ImageBufFromImage(img), captionMargin, captionMargin)
	return nil
}

// captionSize scales the caption with the canvas, never below 10pt.
func captionSize(size int) float64 {
	if pt := float64(size) / 32; pt > 10 {
		return pt
	}
	return 10
}

// Image returns the current canvas.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the current canvas to path.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// EncodePNG writes the current canvas to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases every buffer and the canvas. It is safe to call twice.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.table = shapes.BufferTable{}
	if r.face != nil {
		_ = r.face.Close()
	}
	return r.dc.Close()
}
