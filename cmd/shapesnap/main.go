// Command shapesnap renders shapes to PNG files without a window.
//
// By default every family is rendered at every level into the output
// directory, next to a manifest.yaml describing each image:
//
//	shapesnap -out snaps -size 512
//	shapesnap -family spiral -level 6 -backend terminal
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/backend"
	_ "github.com/gogpu/shapes/backend/software"
	_ "github.com/gogpu/shapes/backend/terminal"
	"github.com/gogpu/shapes/internal/snapshot"
)

func main() {
	var (
		out      = flag.String("out", "snapshots", "output directory")
		family   = flag.String("family", "all", "family to render: square-diamond, spiral, sierpinski or all")
		level    = flag.Int("level", 0, "level to render (1-6), 0 for all")
		size     = flag.Int("size", 512, "image edge length in pixels")
		renderer = flag.String("backend", "", "renderer: "+strings.Join(backend.Available(), ", ")+" (default: best available)")
		quiet    = flag.Bool("q", false, "hide the progress bar")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	lvl := slog.LevelWarn
	if *verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	shapes.SetLogger(logger)
	gg.SetLogger(logger)

	if err := run(*out, *family, *level, *size, *renderer, !*quiet); err != nil {
		fmt.Fprintln(os.Stderr, "shapesnap:", err)
		os.Exit(1)
	}
}

func run(out, familyName string, level, size int, name string, progress bool) error {
	var families []shapes.Family
	if familyName != "all" {
		f, err := shapes.ParseFamily(familyName)
		if err != nil {
			return err
		}
		families = []shapes.Family{f}
	}
	var levels []shapes.Level
	if level != 0 {
		l := shapes.Level(level)
		if !l.Valid() {
			return fmt.Errorf("%w: %d", shapes.ErrInvalidLevel, level)
		}
		levels = []shapes.Level{l}
	}

	var (
		r   backend.Offscreen
		err error
	)
	if name == "" {
		r, name, err = backend.Default(size)
	} else {
		r, err = backend.Get(name, size)
	}
	if err != nil {
		return err
	}
	defer r.Close()
	shapes.Logger().Info("shapesnap: renderer selected", "backend", name, "size", size)

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}

	jobs := snapshot.Jobs(families, levels)
	m := &snapshot.Manifest{Backend: name, Size: size}

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(int64(len(jobs)), "rendering")
		defer bar.Close()
	}
	for _, j := range jobs {
		e, err := snapshot.Render(r, j, out)
		if err != nil {
			return fmt.Errorf("%s %s: %w", j.Family, j.Level, err)
		}
		m.Shapes = append(m.Shapes, e)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if err := snapshot.WriteManifest(out, m); err != nil {
		return err
	}
	fmt.Println(snapshot.Summary(m, language.English))
	return nil
}
