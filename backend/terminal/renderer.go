package terminal

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/shapes"
)

// halfBlock paints the upper pixel as foreground, the lower as background.
const halfBlock = '▀'

// Renderer is a shapes.Backend painting into a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	opts    options
	table   shapes.BufferTable
	canvas  *canvas
	caption string
	closed  bool
}

var _ shapes.Backend = (*Renderer)(nil)

// New creates a Renderer drawing to screen, which must be initialised.
func New(screen tcell.Screen, opts ...Option) *Renderer {
	r := newRenderer(opts)
	r.screen = screen
	w, h := screen.Size()
	r.canvas = newCanvas(w, 2*h)
	return r
}

// NewOffscreen creates a screenless Renderer with a size×size canvas.
func NewOffscreen(size int, opts ...Option) *Renderer {
	r := newRenderer(opts)
	r.canvas = newCanvas(size, size)
	return r
}

func newRenderer(opts []Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

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

// SetCaption sets the text shown in the top-left corner.
func (r *Renderer) SetCaption(s string) { r.caption = s }

// Draw clears the canvas, rasterises the first count vertices of b and,
// with a screen, paints and shows the result. The zero Buffer only clears.
func (r *Renderer) Draw(b shapes.Buffer, mode shapes.Mode, count int) error {
	if r.closed {
		return shapes.ErrClosed
	}
	if r.screen != nil {
		w, h := r.screen.Size()
		r.canvas.resize(w, 2*h)
	}
	r.canvas.clear(image.NewUniform(r.opts.background))

	if b != 0 {
		g, ok := r.table.Get(b)
		if !ok {
			return &shapes.GraphicsError{Op: "draw", Err: fmt.Errorf("%w: %d", shapes.ErrUnknownBuffer, b)}
		}
		if count > g.Len() || count < 0 {
			count = g.Len()
		}
		r.canvas.draw(g, mode, count)
	}

	if r.screen == nil {
		if r.caption != "" {
			r.canvas.label(r.caption)
		}
		return nil
	}
	r.paint()
	return nil
}

// paint copies the canvas onto the screen two pixels per cell.
func (r *Renderer) paint() {
	img := r.canvas.img
	cols, rows := img.Rect.Dx(), img.Rect.Dy()/2
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			st := tcell.StyleDefault.
				Foreground(cellColor(img.RGBAAt(x, 2*y))).
				Background(cellColor(img.RGBAAt(x, 2*y+1)))
			r.screen.SetContent(x, y, halfBlock, nil, st)
		}
	}

	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, ch := range []rune(r.caption) {
		if i >= cols {
			break
		}
		r.screen.SetContent(i, 0, ch, nil, st)
	}
	r.screen.Show()
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Image returns the canvas of the last draw.
func (r *Renderer) Image() image.Image { return r.canvas.img }

// Close releases every buffer. It does not finalise the screen.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.table = shapes.BufferTable{}
	return nil
}
