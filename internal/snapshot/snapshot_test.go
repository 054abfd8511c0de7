package snapshot

import (
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/backend/software"
)

func TestJobs(t *testing.T) {
	all := Jobs(nil, nil)
	if len(all) != 18 {
		t.Fatalf("len(Jobs(nil, nil)) = %d, want 18", len(all))
	}
	if all[0] != (Job{shapes.SquareDiamond, 1}) || all[17] != (Job{shapes.Sierpinski, 6}) {
		t.Errorf("Jobs() order = %v ... %v", all[0], all[17])
	}

	some := Jobs([]shapes.Family{shapes.Spiral}, []shapes.Level{2, 5})
	if len(some) != 2 || some[1] != (Job{shapes.Spiral, 5}) {
		t.Errorf("Jobs(spiral, 2 5) = %v", some)
	}
	if got := some[1].File(); got != "spiral-5.png" {
		t.Errorf("File() = %q, want spiral-5.png", got)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	r := software.New(software.WithSize(32))
	defer r.Close()

	tests := []struct {
		job      Job
		mode     string
		vertices int
	}{
		{Job{shapes.Sierpinski, 2}, "triangles", 48},
		{Job{shapes.SquareDiamond, 3}, "triangles", 36},
		{Job{shapes.Spiral, 1}, "lines", 3200},
	}
	for _, tt := range tests {
		e, err := Render(r, tt.job, dir)
		if err != nil {
			t.Fatalf("Render(%v) = %v", tt.job, err)
		}
		if e.Mode != tt.mode || e.Vertices != tt.vertices || e.File != tt.job.File() {
			t.Errorf("Render(%v) = %+v, want %s with %d vertices", tt.job, e, tt.mode, tt.vertices)
		}

		f, err := os.Open(filepath.Join(dir, e.File))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("png.Decode(%s) = %v", e.File, err)
		}
		if img.Bounds().Dx() != 32 {
			t.Errorf("%s width = %d, want 32", e.File, img.Bounds().Dx())
		}
	}

	// Each render releases its buffer when the scene closes.
	if r.Live() != 0 {
		t.Errorf("Live() = %d after renders, want 0", r.Live())
	}
}

func TestRenderMissingDir(t *testing.T) {
	r := software.New(software.WithSize(8))
	defer r.Close()
	if _, err := Render(r, Job{shapes.Spiral, 1}, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Render() into a missing directory = nil, want error")
	}
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{
		Backend: "software",
		Size:    512,
		Shapes: []Entry{
			{Family: "spiral", Level: 6, Mode: "lines", Vertices: 115200, File: "spiral-6.png"},
			{Family: "sierpinski", Level: 1, Mode: "triangles", Vertices: 12, File: "sierpinski-1.png"},
		},
	}
	if err := WriteManifest(dir, m); err != nil {
		t.Fatalf("WriteManifest() = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestFilename))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "family: spiral") || !strings.Contains(string(data), "vertices: 115200") {
		t.Errorf("manifest = %q, want the spiral entry", data)
	}

	got, err := ReadManifest(filepath.Join(dir, ManifestFilename))
	if err != nil {
		t.Fatalf("ReadManifest() = %v", err)
	}
	if len(got.Shapes) != 2 || got.Shapes[0] != m.Shapes[0] || got.Size != 512 {
		t.Errorf("ReadManifest() = %+v", got)
	}

	if _, err := ReadManifest(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("ReadManifest(missing) = nil, want error")
	}
}

func TestWriteManifestErrors(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{Backend: "software", Size: 64}

	if err := WriteManifest(filepath.Join(dir, "missing"), m); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("WriteManifest(missing dir) = %v, want fs.ErrNotExist", err)
	}

	if err := os.Mkdir(filepath.Join(dir, ManifestFilename), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := WriteManifest(dir, m); err == nil {
		t.Error("WriteManifest() over a directory = nil, want error")
	}
}

func TestSummary(t *testing.T) {
	m := &Manifest{
		Backend: "software",
		Size:    512,
		Shapes:  []Entry{{Vertices: 115200}, {Vertices: 4368}},
	}
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.English, "2 images, 119,568 vertices, 512x512 px (software)"},
		{language.German, "2 images, 119.568 vertices, 512x512 px (software)"},
	}
	for _, tt := range tests {
		if got := Summary(m, tt.tag); got != tt.want {
			t.Errorf("Summary(%v) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
