package shapes

import "github.com/gogpu/gpucontext"

// KeyAction is the kind of a key event.
type KeyAction int

const (
	KeyPress KeyAction = iota
	KeyRelease
	KeyRepeat
)

func (a KeyAction) String() string {
	switch a {
	case KeyPress:
		return "press"
	case KeyRelease:
		return "release"
	case KeyRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// familyKeys and levelKeys are the nine keys the controller reacts to.
var familyKeys = map[gpucontext.Key]Family{
	gpucontext.KeyA: SquareDiamond,
	gpucontext.KeyB: Spiral,
	gpucontext.KeyC: Sierpinski,
}

var levelKeys = map[gpucontext.Key]Level{
	gpucontext.Key1: 1,
	gpucontext.Key2: 2,
	gpucontext.Key3: 3,
	gpucontext.Key4: 4,
	gpucontext.Key5: 5,
	gpucontext.Key6: 6,
}

// Controller maps key events onto a Scene. A, B and C select the shape
// family; 1 to 6 select the level. Only presses count: releases, repeats
// and every other key are ignored.
type Controller struct {
	scene *Scene
	held  map[gpucontext.Key]bool
}

// NewController returns a controller driving s.
func NewController(s *Scene) *Controller {
	return &Controller{scene: s, held: make(map[gpucontext.Key]bool)}
}

// Scene returns the scene the controller drives.
func (c *Controller) Scene() *Scene { return c.scene }

// HandleKey applies one key event. It reports whether the key changed the
// configuration and regenerated the scene. The error is a regeneration
// error from the scene; it is never fatal.
func (c *Controller) HandleKey(key gpucontext.Key, action KeyAction) (bool, error) {
	if action != KeyPress {
		return false, nil
	}
	if f, ok := familyKeys[key]; ok {
		return true, c.scene.SetFamily(f)
	}
	if l, ok := levelKeys[key]; ok {
		return true, c.scene.SetLevel(l)
	}
	return false, nil
}

// Attach registers the controller on src's key callbacks. Errors are
// logged at Warn and the event loop continues. onChange, if not nil, runs
// after every handled key, typically to request a redraw.
//
// The event source reports OS auto-repeat as further presses, so a press
// of a key that has not been released since is handled as KeyRepeat.
func (c *Controller) Attach(src gpucontext.EventSource, onChange func()) {
	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		action := KeyPress
		if c.held[key] {
			action = KeyRepeat
		}
		c.held[key] = true
		handled, err := c.HandleKey(key, action)
		if err != nil {
			Logger().Warn("shapes: key handling failed", "key", uint16(key), "err", err)
		}
		if handled && onChange != nil {
			onChange()
		}
	})
	src.OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		delete(c.held, key)
		_, _ = c.HandleKey(key, KeyRelease)
	})
}

// KeyForFamily returns the key that selects f.
func KeyForFamily(f Family) gpucontext.Key {
	return gpucontext.KeyA + gpucontext.Key(f)
}

// KeyForLevel returns the key that selects l.
func KeyForLevel(l Level) gpucontext.Key {
	return gpucontext.Key1 + gpucontext.Key(l-1)
}
