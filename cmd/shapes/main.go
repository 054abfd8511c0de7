// Command shapes opens a 512×512 window and draws one of three procedural
// shapes.
//
// Keys A, B and C select the square/diamond pattern, the spiral and the
// Sierpinski triangle; keys 1 to 6 select the level of detail. Shader
// sources are read from vertex.wgsl and fragment.wgsl in the working
// directory when present, otherwise the built-in copies are used.
//
// Set SHAPES_DEBUG=1 to log every regeneration.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/backend/gpu"
	"github.com/gogpu/shapes/shader"
)

const (
	width  = 512
	height = 512
	title  = "Shapes"
)

func main() {
	logger := newLogger(os.Getenv("SHAPES_DEBUG") != "")
	shapes.SetLogger(logger)
	wgpu.SetLogger(logger)

	if err := run(logger); err != nil {
		fatal(logger, err)
	}
}

// fatal reports an initialization failure and exits with status 1.
func fatal(logger *slog.Logger, err error) {
	logger.Error("shapes: initialization failed", "err", err)
	os.Exit(1)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// surface is the part of *gogpu.Context a frame needs.
type surface interface {
	SurfaceView() *wgpu.TextureView
	SurfaceSize() (uint32, uint32)
}

// drawFrame points r at the current swapchain view and draws scene into it.
func drawFrame(s surface, r *gpu.Renderer, scene *shapes.Scene, logger *slog.Logger) {
	w, h := s.SurfaceSize()
	r.SetTarget(s.SurfaceView(), w, h)
	if err := scene.Draw(); err != nil {
		logger.Warn("shapes: draw", "err", err)
	}
}

func run(logger *slog.Logger) error {
	src, err := shader.LoadDir(".")
	if err != nil {
		return fmt.Errorf("%w: %w", shapes.ErrInit, err)
	}
	prog, err := shader.Build(src)
	if err != nil {
		var ce *shader.CompileError
		if errors.As(err, &ce) {
			fmt.Fprint(os.Stderr, ce.Listing())
		}
		return err
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(width, height).
		WithContinuousRender(false))

	var (
		renderer *gpu.Renderer
		scene    *shapes.Scene
		redraw   *gogpu.AnimationToken
	)

	app.OnDraw(func(dc *gogpu.Context) {
		if scene == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			logger.Info("shapes: window ready", "backend", fmt.Sprint(dc.Backend()))

			var err error
			if renderer, err = gpu.FromProvider(provider, prog); err != nil {
				fatal(logger, err)
			}
			// A failed first upload is a runtime error: the scene is kept
			// and the next key press retries.
			if scene, err = shapes.NewScene(renderer); scene == nil {
				fatal(logger, err)
			} else if err != nil {
				logger.Warn("shapes: initial upload", "err", err)
			}
			shapes.NewController(scene).Attach(app.EventSource(), func() {
				if redraw == nil {
					redraw = app.StartAnimation()
				}
			})
		}

		drawFrame(dc, renderer, scene, logger)

		// One frame per input change.
		if redraw != nil {
			redraw.Stop()
			redraw = nil
		}
	})

	app.OnClose(func() {
		if scene != nil {
			_ = scene.Close()
		}
		if renderer != nil {
			_ = renderer.Close()
		}
		logger.Info("shapes: goodbye")
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("%w: %w", shapes.ErrInit, err)
	}
	return nil
}
