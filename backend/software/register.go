package software

import "github.com/gogpu/shapes/backend"

func init() {
	backend.Register(backend.Software, func(size int) (backend.Offscreen, error) {
		return New(WithSize(size)), nil
	})
}
