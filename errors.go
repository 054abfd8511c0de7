package shapes

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInit wraps every startup failure: window or device creation,
	// shader load, compile and link, pipeline creation.
	ErrInit = errors.New("shapes: initialization failed")

	// ErrInvalidLevel is returned for a level outside [MinLevel, MaxLevel].
	ErrInvalidLevel = errors.New("shapes: level out of range")

	// ErrInvalidFamily is returned for an unknown shape family.
	ErrInvalidFamily = errors.New("shapes: unknown shape family")

	// ErrNilBackend is returned by NewScene when no backend is given.
	ErrNilBackend = errors.New("shapes: nil backend")

	// ErrClosed is returned by Scene and backend operations after Close.
	ErrClosed = errors.New("shapes: closed")

	// ErrUnknownBuffer is returned when drawing a buffer that was never
	// uploaded or was already released.
	ErrUnknownBuffer = errors.New("shapes: unknown buffer")
)

// GraphicsError is a runtime error reported by a backend after an
// operation. It is never fatal: callers report it and keep drawing.
type GraphicsError struct {
	Op  string // "upload", "release", "draw"
	Err error
}

func (e *GraphicsError) Error() string {
	return fmt.Sprintf("shapes: graphics error during %s: %v", e.Op, e.Err)
}

func (e *GraphicsError) Unwrap() error { return e.Err }

// IsGraphicsError reports whether err is or wraps a *GraphicsError.
func IsGraphicsError(err error) bool {
	var ge *GraphicsError
	return errors.As(err, &ge)
}
