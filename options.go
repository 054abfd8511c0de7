package shapes

// SceneOption configures a Scene during creation.
//
// Example:
//
//	s, err := shapes.NewScene(backend,
//	    shapes.WithFamily(shapes.Sierpinski),
//	    shapes.WithLevel(3),
//	)
type SceneOption func(*sceneOptions)

// RegenerateFunc is called after every successful regeneration with the
// new configuration and the geometry handed to the backend.
type RegenerateFunc func(f Family, l Level, g *Geometry)

type sceneOptions struct {
	family       Family
	level        Level
	onRegenerate RegenerateFunc
}

// defaultSceneOptions is the startup state: SquareDiamond at level 1.
func defaultSceneOptions() sceneOptions {
	return sceneOptions{
		family: SquareDiamond,
		level:  MinLevel,
	}
}

// WithFamily sets the initial shape family.
func WithFamily(f Family) SceneOption {
	return func(o *sceneOptions) {
		o.family = f
	}
}

// WithLevel sets the initial detail level.
func WithLevel(l Level) SceneOption {
	return func(o *sceneOptions) {
		o.level = l
	}
}

// WithOnRegenerate installs a hook called after each regeneration.
// Front-ends use it to request a redraw.
func WithOnRegenerate(fn RegenerateFunc) SceneOption {
	return func(o *sceneOptions) {
		o.onRegenerate = fn
	}
}
