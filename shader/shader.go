// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shader loads, compiles and links the WGSL shaders used to draw
// shape geometry.
//
// Two files make up the program: vertex.wgsl with a vertex entry point
// vs_main taking a vec2 position at location 0 and a vec3 color at
// location 1, and fragment.wgsl with a fragment entry point fs_main.
// Files found on disk take precedence over the embedded defaults.
//
// Compilation runs naga's parse, lower and validate stages. Linking checks
// that each file exposes the entry point its stage needs.
package shader

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/shapes"
)

// File names and entry points.
const (
	VertexFile    = "vertex.wgsl"
	FragmentFile  = "fragment.wgsl"
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

//go:embed shaders/*.wgsl
var embedded embed.FS

// Errors.
var (
	// ErrMissingSource is returned when a shader file is absent or empty.
	ErrMissingSource = errors.New("shader: missing source")

	// ErrLink is returned when a stage lacks its entry point.
	ErrLink = errors.New("shader: link failed")
)

// Stage is a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	if s == Fragment {
		return "fragment"
	}
	return "vertex"
}

func (s Stage) entry() (string, ir.ShaderStage) {
	if s == Fragment {
		return FragmentEntry, ir.StageFragment
	}
	return VertexEntry, ir.StageVertex
}

// Sources holds the WGSL text of both stages.
type Sources struct {
	Vertex   string
	Fragment string
}

// Source returns the text for stage s.
func (s Sources) Source(stage Stage) string {
	if stage == Fragment {
		return s.Fragment
	}
	return s.Vertex
}

// Default returns the embedded shader sources.
func Default() Sources {
	src, err := Load(embedded, "shaders")
	if err != nil {
		panic("shader: embedded sources unreadable: " + err.Error())
	}
	return src
}

// Load reads both shader files from dir inside fsys.
func Load(fsys fs.FS, dir string) (Sources, error) {
	vs, err := readSource(fsys, dir, VertexFile)
	if err != nil {
		return Sources{}, err
	}
	fsrc, err := readSource(fsys, dir, FragmentFile)
	if err != nil {
		return Sources{}, err
	}
	return Sources{Vertex: vs, Fragment: fsrc}, nil
}

// LoadDir reads the shader files from dir on disk. A file that does not
// exist there is taken from the embedded defaults; any other read error,
// or an empty file, is returned.
func LoadDir(dir string) (Sources, error) {
	def := Default()
	disk := os.DirFS(dir)

	out := def
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{VertexFile, &out.Vertex},
		{FragmentFile, &out.Fragment},
	} {
		src, err := readSource(disk, ".", f.name)
		switch {
		case err == nil:
			*f.dst = src
			shapes.Logger().Info("shader: loaded from disk", "file", f.name, "dir", dir)
		case errors.Is(err, fs.ErrNotExist):
			shapes.Logger().Debug("shader: using embedded source", "file", f.name)
		default:
			return Sources{}, err
		}
	}
	return out, nil
}

func readSource(fsys fs.FS, dir, name string) (string, error) {
	path := name
	if dir != "" && dir != "." {
		path = dir + "/" + name
	}
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("shader: read %s: %w", name, err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrMissingSource, name)
	}
	return string(b), nil
}

// CompileError reports a stage that failed to parse, lower or validate.
// Source is kept so callers can print it next to the error.
type CompileError struct {
	Stage  Stage
	Source string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s compile failed: %v", e.Stage, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Listing returns the source with 1-based line numbers.
func (e *CompileError) Listing() string {
	var b strings.Builder
	for i, line := range strings.Split(e.Source, "\n") {
		fmt.Fprintf(&b, "%4d | %s\n", i+1, line)
	}
	return b.String()
}

// Compile parses, lowers and validates src as the given stage.
func Compile(stage Stage, src string) (*ir.Module, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: %s stage", ErrMissingSource, stage)
	}
	ast, err := naga.Parse(src)
	if err != nil {
		return nil, &CompileError{Stage: stage, Source: src, Err: err}
	}
	mod, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, &CompileError{Stage: stage, Source: src, Err: err}
	}
	verrs, err := naga.Validate(mod)
	if err != nil {
		return nil, &CompileError{Stage: stage, Source: src, Err: err}
	}
	if len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i := range verrs {
			errs[i] = verrs[i]
		}
		return nil, &CompileError{Stage: stage, Source: src, Err: errors.Join(errs...)}
	}
	return mod, nil
}

// Program is a compiled and linked pair of stages.
type Program struct {
	Sources  Sources
	Vertex   *ir.Module
	Fragment *ir.Module
}

// Link checks that vs defines the vertex entry point and fsm the fragment
// entry point.
func Link(vs, fsm *ir.Module) error {
	for _, m := range []struct {
		stage Stage
		mod   *ir.Module
	}{
		{Vertex, vs},
		{Fragment, fsm},
	} {
		name, want := m.stage.entry()
		if !hasEntryPoint(m.mod, name, want) {
			return fmt.Errorf("%w: %s stage has no entry point %q", ErrLink, m.stage, name)
		}
	}
	return nil
}

func hasEntryPoint(m *ir.Module, name string, stage ir.ShaderStage) bool {
	if m == nil {
		return false
	}
	for _, ep := range m.EntryPoints {
		if ep.Name == name && ep.Stage == stage {
			return true
		}
	}
	return false
}

// Build compiles and links src. Any failure is an initialization failure
// and wraps shapes.ErrInit.
func Build(src Sources) (*Program, error) {
	var mods [2]*ir.Module
	for i, stage := range []Stage{Vertex, Fragment} {
		m, err := Compile(stage, src.Source(stage))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", shapes.ErrInit, err)
		}
		mods[i] = m
	}
	vs, fsm := mods[0], mods[1]
	if err := Link(vs, fsm); err != nil {
		return nil, fmt.Errorf("%w: %w", shapes.ErrInit, err)
	}
	shapes.Logger().Info("shader: program linked",
		"vertex_entry", VertexEntry, "fragment_entry", FragmentEntry)
	return &Program{Sources: src, Vertex: vs, Fragment: fsm}, nil
}
