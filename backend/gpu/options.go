package gpu

import "github.com/gogpu/gputypes"

// Option configures a Renderer.
type Option func(*options)

type options struct {
	clear  gputypes.Color
	format gputypes.TextureFormat
}

func defaultOptions() options {
	return options{
		clear:  defaultClear,
		format: gputypes.TextureFormatUndefined,
	}
}

// WithClearColor sets the color the target is cleared to before drawing.
func WithClearColor(r, g, b float64) Option {
	return func(o *options) {
		o.clear = gputypes.Color{R: r, G: g, B: b, A: 1}
	}
}

// WithFormat sets the color target format. By default the provider's
// surface format is used, falling back to BGRA8Unorm when headless.
func WithFormat(f gputypes.TextureFormat) Option {
	return func(o *options) {
		o.format = f
	}
}
