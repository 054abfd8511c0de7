package gpu

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/shader"
)

func TestVertexLayouts(t *testing.T) {
	layouts := vertexLayouts()
	if len(layouts) != 2 {
		t.Fatalf("len(vertexLayouts()) = %d, want 2", len(layouts))
	}
	tests := []struct {
		slot     int
		stride   uint64
		format   gputypes.VertexFormat
		location uint32
	}{
		{0, 8, gputypes.VertexFormatFloat32x2, 0},
		{1, 12, gputypes.VertexFormatFloat32x3, 1},
	}
	for _, tt := range tests {
		l := layouts[tt.slot]
		if l.ArrayStride != tt.stride {
			t.Errorf("slot %d ArrayStride = %d, want %d", tt.slot, l.ArrayStride, tt.stride)
		}
		if l.StepMode != gputypes.VertexStepModeVertex {
			t.Errorf("slot %d StepMode = %v, want vertex", tt.slot, l.StepMode)
		}
		if len(l.Attributes) != 1 {
			t.Fatalf("slot %d has %d attributes, want 1", tt.slot, len(l.Attributes))
		}
		a := l.Attributes[0]
		if a.Format != tt.format || a.Offset != 0 || a.ShaderLocation != tt.location {
			t.Errorf("slot %d attribute = %+v, want format %v at location %d", tt.slot, a, tt.format, tt.location)
		}
	}
}

func TestTopology(t *testing.T) {
	if got := topology(shapes.Triangles); got != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("topology(Triangles) = %v, want triangle list", got)
	}
	if got := topology(shapes.Lines); got != gputypes.PrimitiveTopologyLineList {
		t.Errorf("topology(Lines) = %v, want line list", got)
	}
	for _, f := range shapes.Families() {
		ps := primitiveState(f.Mode())
		if ps.CullMode != gputypes.CullModeNone {
			t.Errorf("%v primitive culls; nested shapes mix windings", f)
		}
	}
}

func TestFloat32Bytes(t *testing.T) {
	in := []float32{0, 1, -0.5, 0.42}
	b := float32Bytes(in)
	if len(b) != 16 {
		t.Fatalf("len = %d, want 16", len(b))
	}
	for i, want := range in {
		got := math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
		if got != want {
			t.Errorf("word %d = %v, want %v", i, got, want)
		}
	}
}

func TestGeometryBytes(t *testing.T) {
	for _, f := range shapes.Families() {
		g, err := shapes.Generate(f, 2)
		if err != nil {
			t.Fatal(err)
		}
		pos, col := geometryBytes(g)
		if len(pos) != positionStride*g.Len() {
			t.Errorf("%v positions = %d bytes, want %d", f, len(pos), positionStride*g.Len())
		}
		if len(col) != colorStride*g.Len() {
			t.Errorf("%v colors = %d bytes, want %d", f, len(col), colorStride*g.Len())
		}
	}
}

func TestOptions(t *testing.T) {
	o := defaultOptions()
	if o.clear != (gputypes.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}) {
		t.Errorf("default clear = %+v, want dark grey", o.clear)
	}
	WithClearColor(0, 0, 0)(&o)
	WithFormat(gputypes.TextureFormatRGBA8Unorm)(&o)
	if o.clear != (gputypes.Color{A: 1}) || o.format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("options = %+v", o)
	}
}

// fakeProvider is a DeviceProvider whose device is not a *wgpu.Device.
type fakeProvider struct{}

func (fakeProvider) Device() gpucontext.Device             { return struct{}{} }
func (fakeProvider) Queue() gpucontext.Queue               { return nil }
func (fakeProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (fakeProvider) Adapter() gpucontext.Adapter           { return nil }
func (fakeProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

func TestFromProviderErrors(t *testing.T) {
	prog, err := shader.Build(shader.Default())
	if err != nil {
		t.Fatalf("shader.Build() = %v", err)
	}

	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		want     error
	}{
		{"nil provider", nil, ErrNilProvider},
		{"foreign device", fakeProvider{}, ErrNotWGPUDevice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FromProvider(tt.provider, prog)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromProvider() = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, shapes.ErrInit) {
				t.Errorf("FromProvider() = %v, want wrapped ErrInit", err)
			}
			if r != nil {
				t.Error("FromProvider() returned a renderer on error")
			}
		})
	}

	if _, err := New(nil, prog); !errors.Is(err, shapes.ErrInit) {
		t.Errorf("New(nil) = %v, want ErrInit", err)
	}
}

func TestDrawWithoutTarget(t *testing.T) {
	r := &Renderer{bufs: make(map[shapes.Buffer]*vertexBuffers)}
	err := r.Draw(0, shapes.Triangles, 0)
	if !errors.Is(err, ErrNoTarget) || !shapes.IsGraphicsError(err) {
		t.Errorf("Draw() = %v, want GraphicsError wrapping ErrNoTarget", err)
	}

	r.SetTarget(nil, 512, 512)
	if r.target != nil {
		t.Error("SetTarget(nil) left a target")
	}
	if err := r.Draw(0, shapes.Triangles, 0); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Draw() after SetTarget(nil) = %v, want ErrNoTarget", err)
	}
}

func TestSetTarget(t *testing.T) {
	r := &Renderer{bufs: make(map[shapes.Buffer]*vertexBuffers)}
	view := &wgpu.TextureView{}
	r.SetTarget(view, 640, 480)
	if r.target != view || r.width != 640 || r.height != 480 {
		t.Errorf("SetTarget() = %p %dx%d, want %p 640x480", r.target, r.width, r.height, view)
	}
}

func TestUploadEmpty(t *testing.T) {
	r := &Renderer{bufs: make(map[shapes.Buffer]*vertexBuffers)}
	_, err := r.Upload(&shapes.Geometry{})
	if !errors.Is(err, ErrEmptyGeometry) {
		t.Errorf("Upload(empty) = %v, want ErrEmptyGeometry", err)
	}
	r.Release(42)
	if r.Live() != 0 {
		t.Errorf("Live() = %d, want 0", r.Live())
	}
}
