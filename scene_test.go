package shapes

import (
	"errors"
	"fmt"
	"testing"
)

// recordingBackend is an in-memory Backend that records every call.
type recordingBackend struct {
	table     BufferTable
	calls     []string
	failNext  error
	drawErr   error
	lastDraw  drawCall
	drawCount int
}

type drawCall struct {
	buf   Buffer
	mode  Mode
	count int
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{}
}

func (r *recordingBackend) Upload(g *Geometry) (Buffer, error) {
	if err := r.failNext; err != nil {
		r.failNext = nil
		r.calls = append(r.calls, "upload!")
		return 0, err
	}
	b := r.table.Put(g)
	r.calls = append(r.calls, fmt.Sprintf("upload %d", b))
	return b, nil
}

func (r *recordingBackend) Release(b Buffer) {
	r.calls = append(r.calls, fmt.Sprintf("release %d", b))
	r.table.Delete(b)
}

func (r *recordingBackend) Draw(b Buffer, mode Mode, count int) error {
	r.drawCount++
	r.lastDraw = drawCall{b, mode, count}
	return r.drawErr
}

func TestNewSceneInitialState(t *testing.T) {
	rb := newRecordingBackend()
	s, err := NewScene(rb)
	if err != nil {
		t.Fatalf("NewScene() = %v", err)
	}
	if s.Family() != SquareDiamond || s.Level() != 1 {
		t.Errorf("initial state = (%v, %v), want (square-diamond, 1)", s.Family(), s.Level())
	}
	if s.Geometry().Len() != 12 {
		t.Errorf("initial geometry has %d vertices, want 12", s.Geometry().Len())
	}
	if s.Buffer() == 0 {
		t.Error("initial buffer not uploaded")
	}
	if rb.table.Len() != 1 {
		t.Errorf("live buffers = %d, want 1", rb.table.Len())
	}
}

func TestNewSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		b    Backend
		opts []SceneOption
		want error
	}{
		{"nil backend", nil, nil, ErrNilBackend},
		{"bad level", newRecordingBackend(), []SceneOption{WithLevel(0)}, ErrInvalidLevel},
		{"bad family", newRecordingBackend(), []SceneOption{WithFamily(9)}, ErrInvalidFamily},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScene(tt.b, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewScene() error = %v, want %v", err, tt.want)
			}
			if s != nil {
				t.Error("NewScene() returned a scene on error")
			}
		})
	}
}

func TestNewSceneUploadFailure(t *testing.T) {
	rb := newRecordingBackend()
	rb.failNext = errors.New("out of memory")

	s, err := NewScene(rb)
	if !IsGraphicsError(err) {
		t.Fatalf("NewScene() error = %v, want *GraphicsError", err)
	}
	if s == nil {
		t.Fatal("NewScene() = nil scene on upload failure, want usable scene")
	}
	if s.Buffer() != 0 {
		t.Errorf("Buffer() = %d after failed upload, want 0", s.Buffer())
	}
	if err := s.Draw(); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if rb.lastDraw != (drawCall{0, Triangles, 0}) {
		t.Errorf("Draw() with no buffer = %+v, want clear-only", rb.lastDraw)
	}

	// The next regeneration recovers.
	if err := s.SetLevel(2); err != nil {
		t.Fatalf("SetLevel(2) = %v", err)
	}
	if s.Buffer() == 0 {
		t.Error("Buffer() = 0 after recovery")
	}
}

func TestSceneReleaseThenUpload(t *testing.T) {
	for _, f := range Families() {
		t.Run(f.String(), func(t *testing.T) {
			rb := newRecordingBackend()
			s, err := NewScene(rb)
			if err != nil {
				t.Fatalf("NewScene() = %v", err)
			}
			if err := s.SetFamily(f); err != nil {
				t.Fatalf("SetFamily(%v) = %v", f, err)
			}
			if err := s.SetLevel(2); err != nil {
				t.Fatalf("SetLevel(2) = %v", err)
			}
			want := []string{"upload 1", "release 1", "upload 2", "release 2", "upload 3"}
			if fmt.Sprint(rb.calls) != fmt.Sprint(want) {
				t.Errorf("calls = %v, want %v", rb.calls, want)
			}
			if rb.table.Len() != 1 {
				t.Errorf("live buffers = %d, want 1", rb.table.Len())
			}
		})
	}
}

func TestSceneIdempotent(t *testing.T) {
	rb := newRecordingBackend()
	s, err := NewScene(rb)
	if err != nil {
		t.Fatalf("NewScene() = %v", err)
	}

	if err := s.Set(Sierpinski, 3); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	first, _ := rb.table.Get(s.Buffer())
	firstBuf := s.Buffer()

	if err := s.Set(Sierpinski, 3); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	second, _ := rb.table.Get(s.Buffer())

	if !first.Equal(second) {
		t.Error("same configuration produced different geometry")
	}
	if s.Buffer() == firstBuf {
		t.Error("second Set() did not replace the buffer")
	}
	if _, ok := rb.table.Get(firstBuf); ok {
		t.Error("first buffer still live after replacement")
	}
}

func TestSceneInvalidLevelKeepsState(t *testing.T) {
	rb := newRecordingBackend()
	s, err := NewScene(rb, WithFamily(Spiral), WithLevel(2))
	if err != nil {
		t.Fatalf("NewScene() = %v", err)
	}
	buf := s.Buffer()
	calls := len(rb.calls)

	for _, l := range []Level{0, 7, -1} {
		if err := s.SetLevel(l); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("SetLevel(%d) = %v, want ErrInvalidLevel", l, err)
		}
	}
	if err := s.SetFamily(Family(5)); !errors.Is(err, ErrInvalidFamily) {
		t.Errorf("SetFamily(5) = %v, want ErrInvalidFamily", err)
	}
	if s.Family() != Spiral || s.Level() != 2 || s.Buffer() != buf {
		t.Errorf("state changed to (%v, %v, %d)", s.Family(), s.Level(), s.Buffer())
	}
	if len(rb.calls) != calls {
		t.Errorf("backend calls after invalid input: %v", rb.calls[calls:])
	}
}

func TestSceneDraw(t *testing.T) {
	rb := newRecordingBackend()
	s, err := NewScene(rb, WithFamily(Spiral), WithLevel(1))
	if err != nil {
		t.Fatalf("NewScene() = %v", err)
	}
	if err := s.Draw(); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	want := drawCall{s.Buffer(), Lines, 3200}
	if rb.lastDraw != want {
		t.Errorf("Draw() = %+v, want %+v", rb.lastDraw, want)
	}

	rb.drawErr = &GraphicsError{Op: "draw", Err: errors.New("device lost")}
	if err := s.Draw(); !IsGraphicsError(err) {
		t.Errorf("Draw() = %v, want *GraphicsError", err)
	}
}

func TestSceneOnRegenerate(t *testing.T) {
	var got []string
	s, err := NewScene(newRecordingBackend(), WithOnRegenerate(func(f Family, l Level, g *Geometry) {
		got = append(got, fmt.Sprintf("%v/%d/%d", f, l, g.Len()))
	}))
	if err != nil {
		t.Fatalf("NewScene() = %v", err)
	}
	_ = s.SetFamily(Sierpinski)
	_ = s.SetLevel(0)

	want := []string{"square-diamond/1/12", "sierpinski/1/12"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("hook calls = %v, want %v", got, want)
	}
}

func TestSceneClose(t *testing.T) {
	rb := newRecordingBackend()
	s, err := NewScene(rb)
	if err != nil {
		t.Fatalf("NewScene() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
	if rb.table.Len() != 0 {
		t.Errorf("live buffers after Close = %d, want 0", rb.table.Len())
	}
	if err := s.SetLevel(2); !errors.Is(err, ErrClosed) {
		t.Errorf("SetLevel after Close = %v, want ErrClosed", err)
	}
	if err := s.Draw(); !errors.Is(err, ErrClosed) {
		t.Errorf("Draw after Close = %v, want ErrClosed", err)
	}
}

func TestGraphicsError(t *testing.T) {
	inner := errors.New("validation failed")
	err := fmt.Errorf("frame: %w", &GraphicsError{Op: "draw", Err: inner})
	if !errors.Is(err, inner) {
		t.Error("GraphicsError does not unwrap to its cause")
	}
	if !IsGraphicsError(err) {
		t.Error("IsGraphicsError() = false for wrapped GraphicsError")
	}
	want := "shapes: graphics error during draw: validation failed"
	var ge *GraphicsError
	if errors.As(err, &ge) && ge.Error() != want {
		t.Errorf("Error() = %q, want %q", ge.Error(), want)
	}
}
