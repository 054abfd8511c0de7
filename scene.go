package shapes

import "fmt"

// Scene is the regeneration state machine: the active family, the active
// level and the buffer currently uploaded to the backend.
//
// Every change of family or level regenerates the geometry, releases the
// previous buffer and uploads the new one, in that order, for every family.
// A Scene is not safe for concurrent use; it belongs to the front-end's
// event loop.
type Scene struct {
	backend      Backend
	family       Family
	level        Level
	buf          Buffer
	geom         *Geometry
	onRegenerate RegenerateFunc
	closed       bool
}

// NewScene creates a scene in its initial state (SquareDiamond, level 1
// unless overridden by options) and uploads its first geometry.
//
// An invalid initial family or level is an error and no scene is returned.
// If only the first upload fails, NewScene returns the usable scene
// together with a *GraphicsError; the next successful regeneration
// recovers.
func NewScene(b Backend, opts ...SceneOption) (*Scene, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	o := defaultSceneOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.family.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFamily, int(o.family))
	}
	if !o.level.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(o.level))
	}

	s := &Scene{
		backend:      b,
		family:       o.family,
		level:        o.level,
		onRegenerate: o.onRegenerate,
	}
	return s, s.regenerate()
}

// Family returns the active shape family.
func (s *Scene) Family() Family { return s.family }

// Level returns the active detail level.
func (s *Scene) Level() Level { return s.level }

// Mode returns the primitive mode of the active geometry.
func (s *Scene) Mode() Mode { return s.family.Mode() }

// Buffer returns the handle of the uploaded geometry, or zero if the last
// upload failed.
func (s *Scene) Buffer() Buffer { return s.buf }

// Geometry returns the most recently generated geometry. Callers must not
// modify it.
func (s *Scene) Geometry() *Geometry { return s.geom }

// SetFamily switches the active family, keeps the level and regenerates.
func (s *Scene) SetFamily(f Family) error {
	return s.Set(f, s.level)
}

// SetLevel switches the active level, keeps the family and regenerates.
// An out-of-range level returns ErrInvalidLevel and changes nothing.
func (s *Scene) SetLevel(l Level) error {
	return s.Set(s.family, l)
}

// Set switches family and level together with a single regeneration.
// Setting the current configuration again still regenerates; the new
// buffer replaces the old one.
func (s *Scene) Set(f Family, l Level) error {
	if s.closed {
		return ErrClosed
	}
	if !f.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFamily, int(f))
	}
	if !l.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	s.family, s.level = f, l
	return s.regenerate()
}

func (s *Scene) regenerate() error {
	g := generators[s.family](s.level)
	s.geom = g

	if s.buf != 0 {
		s.backend.Release(s.buf)
		s.buf = 0
	}

	buf, err := s.backend.Upload(g)
	if err != nil {
		if !IsGraphicsError(err) {
			err = &GraphicsError{Op: "upload", Err: err}
		}
		Logger().Warn("shapes: regeneration failed",
			"family", s.family.String(), "level", int(s.level), "err", err)
		return err
	}
	s.buf = buf

	Logger().Debug("shapes: regenerated",
		"family", s.family.String(),
		"level", int(s.level),
		"mode", g.Mode.String(),
		"vertices", g.Len(),
		"buffer", uint32(buf))

	if s.onRegenerate != nil {
		s.onRegenerate(s.family, s.level, g)
	}
	return nil
}

// Draw asks the backend to draw the active buffer. With no uploaded
// buffer the backend only clears. Errors are runtime graphics errors:
// report them and keep drawing frames.
func (s *Scene) Draw() error {
	if s.closed {
		return ErrClosed
	}
	count := 0
	if s.buf != 0 {
		count = s.geom.Len()
	}
	return s.backend.Draw(s.buf, s.family.Mode(), count)
}

// Close releases the active buffer. Close is idempotent.
func (s *Scene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.buf != 0 {
		s.backend.Release(s.buf)
		s.buf = 0
	}
	return nil
}
