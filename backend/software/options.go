package software

import "github.com/gogpu/gg"

// DefaultSize is the edge length, in pixels, of the square canvas.
const DefaultSize = 512

// Option configures a Renderer.
type Option func(*options)

type options struct {
	size       int
	background gg.RGBA
}

func defaultOptions() options {
	return options{
		size:       DefaultSize,
		background: gg.RGB(0.2, 0.2, 0.2),
	}
}

// WithSize sets the canvas edge length in pixels. Values below 1 are ignored.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithBackground sets the colour the canvas is cleared to before each draw.
func WithBackground(r, g, b float64) Option {
	return func(o *options) {
		o.background = gg.RGB(r, g, b)
	}
}
