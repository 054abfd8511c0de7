package terminal

import "github.com/gogpu/shapes/backend"

func init() {
	backend.Register(backend.Terminal, func(size int) (backend.Offscreen, error) {
		return NewOffscreen(size), nil
	})
}
