// Package snapshot renders shapes to PNG files and records them in a YAML
// manifest.
package snapshot

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/backend"
)

// ManifestFilename is the manifest's name inside the output directory.
const ManifestFilename = "manifest.yaml"

// Job is one (family, level) configuration to render.
type Job struct {
	Family shapes.Family
	Level  shapes.Level
}

// File returns the PNG name for j, such as "spiral-3.png".
func (j Job) File() string {
	return fmt.Sprintf("%s-%d.png", j.Family, int(j.Level))
}

// Entry describes one rendered image.
type Entry struct {
	Family   string `yaml:"family"`
	Level    int    `yaml:"level"`
	Mode     string `yaml:"mode"`
	Vertices int    `yaml:"vertices"`
	File     string `yaml:"file"`
}

// Manifest lists every image of a run.
type Manifest struct {
	Backend string  `yaml:"backend"`
	Size    int     `yaml:"size"`
	Shapes  []Entry `yaml:"shapes"`
}

// Jobs returns the cross product of families and levels, families first.
// Empty slices select every family or level.
func Jobs(families []shapes.Family, levels []shapes.Level) []Job {
	if len(families) == 0 {
		families = shapes.Families()
	}
	if len(levels) == 0 {
		levels = shapes.Levels()
	}
	jobs := make([]Job, 0, len(families)*len(levels))
	for _, f := range families {
		for _, l := range levels {
			jobs = append(jobs, Job{Family: f, Level: l})
		}
	}
	return jobs
}

// Render draws j with r and writes the image into dir.
func Render(r backend.Offscreen, j Job, dir string) (Entry, error) {
	scene, err := shapes.NewScene(r, shapes.WithFamily(j.Family), shapes.WithLevel(j.Level))
	if err != nil {
		if scene != nil {
			_ = scene.Close()
		}
		return Entry{}, err
	}
	defer scene.Close()

	r.SetCaption(fmt.Sprintf("%s %s", j.Family, j.Level))
	if err := scene.Draw(); err != nil {
		return Entry{}, err
	}

	name := j.File()
	if err := writePNG(filepath.Join(dir, name), r); err != nil {
		return Entry{}, err
	}
	return Entry{
		Family:   j.Family.String(),
		Level:    int(j.Level),
		Mode:     scene.Mode().String(),
		Vertices: scene.Geometry().Len(),
		File:     name,
	}, nil
}

func writePNG(path string, r backend.Offscreen) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := png.Encode(f, r.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// WriteManifest writes m to dir/manifest.yaml.
func WriteManifest(dir string, m *Manifest) (err error) {
	f, err := os.Create(filepath.Join(dir, ManifestFilename))
	if err != nil {
		return fmt.Errorf("create %s: %w", ManifestFilename, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode %s: %w", ManifestFilename, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", ManifestFilename, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &m, nil
}

// Summary reports the image and vertex totals of m, with numbers
// formatted for tag.
func Summary(m *Manifest, tag language.Tag) string {
	total := 0
	for _, e := range m.Shapes {
		total += e.Vertices
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%d images, %d vertices, %dx%d px (%s)",
		len(m.Shapes), total, m.Size, m.Size, m.Backend)
}
