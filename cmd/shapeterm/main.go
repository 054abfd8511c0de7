// Command shapeterm draws the procedural shapes inside a terminal.
//
// Keys a, b and c select the family, 1 to 6 the level of detail, and Esc,
// q or Ctrl-C quit. Logs go to a file because the terminal is taken over
// by the drawing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/backend/terminal"
)

func main() {
	var (
		family  = flag.String("family", "square-diamond", "initial family: square-diamond, spiral or sierpinski")
		level   = flag.Int("level", 1, "initial level of detail (1-6)")
		logPath = flag.String("log", "", "write logs to this file")
		verbose = flag.Bool("v", false, "log every regeneration")
	)
	flag.Parse()

	if err := run(*family, shapes.Level(*level), *logPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "shapeterm:", err)
		os.Exit(1)
	}
}

func run(familyName string, level shapes.Level, logPath string, verbose bool) error {
	f, err := shapes.ParseFamily(familyName)
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if logPath != "" {
		file, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	shapes.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %w", shapes.ErrInit, err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: %w", shapes.ErrInit, err)
	}
	defer screen.Fini()

	r := terminal.New(screen)
	defer r.Close()
	scene, err := shapes.NewScene(r, shapes.WithFamily(f), shapes.WithLevel(level))
	if scene == nil {
		return err
	}
	defer scene.Close()
	if err != nil {
		shapes.Logger().Warn("shapeterm: initial upload", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shapes.Logger().Info("shapeterm: started", "family", scene.Family().String(), "level", int(scene.Level()))
	err = terminal.Run(ctx, r, scene)
	shapes.Logger().Info("shapeterm: goodbye")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
