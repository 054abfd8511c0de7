package terminal

import "image/color"

// Option configures a Renderer.
type Option func(*options)

type options struct {
	background color.RGBA
}

func defaultOptions() options {
	return options{background: color.RGBA{51, 51, 51, 255}}
}

// WithBackground sets the clear colour from channel intensities in [0,1].
func WithBackground(r, g, b float64) Option {
	return func(o *options) {
		o.background = color.RGBA{unit8(r), unit8(g), unit8(b), 255}
	}
}

func unit8(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
