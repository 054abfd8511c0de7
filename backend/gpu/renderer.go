package gpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/shader"
)

// vertexBuffers is the GPU storage behind one shapes.Buffer.
type vertexBuffers struct {
	positions *wgpu.Buffer
	colors    *wgpu.Buffer
	count     uint32
}

func (vb *vertexBuffers) release() {
	if vb.positions != nil {
		vb.positions.Release()
		vb.positions = nil
	}
	if vb.colors != nil {
		vb.colors.Release()
		vb.colors = nil
	}
}

// Renderer draws shape geometry with wgpu render pipelines.
// It is not safe for concurrent use; call it from the frame loop.
type Renderer struct {
	device *wgpu.Device
	queue  *wgpu.Queue
	format gputypes.TextureFormat
	clear  gputypes.Color

	vsModule   *wgpu.ShaderModule
	fsModule   *wgpu.ShaderModule
	pipeLayout *wgpu.PipelineLayout
	pipelines  [2]*wgpu.RenderPipeline // indexed by shapes.Mode

	bufs map[shapes.Buffer]*vertexBuffers
	next shapes.Buffer

	target        *wgpu.TextureView
	width, height uint32

	// prevCmdBuf is the last submitted command buffer. It is freed once the
	// queue has drained, before the next submission.
	prevCmdBuf *wgpu.CommandBuffer
	closed     bool
}

var _ shapes.Backend = (*Renderer)(nil)

// FromProvider creates a Renderer on the device of a gpucontext provider,
// typically a gogpu App. The surface format of the provider is used unless
// WithFormat overrides it.
func FromProvider(provider gpucontext.DeviceProvider, prog *shader.Program, opts ...Option) (*Renderer, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: %w", shapes.ErrInit, ErrNilProvider)
	}
	dev, ok := provider.Device().(*wgpu.Device)
	if !ok || dev == nil {
		return nil, fmt.Errorf("%w: %w (got %T)", shapes.ErrInit, ErrNotWGPUDevice, provider.Device())
	}
	info := provider.AdapterInfo()
	shapes.Logger().Info("gpu: adapter", "name", info.Name, "type", info.Type.String())

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.format == gputypes.TextureFormatUndefined {
		o.format = provider.SurfaceFormat()
	}
	return newRenderer(dev, prog, o)
}

// New creates a Renderer on device.
func New(device *wgpu.Device, prog *shader.Program, opts ...Option) (*Renderer, error) {
	if device == nil {
		return nil, fmt.Errorf("%w: %w", shapes.ErrInit, ErrNotWGPUDevice)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newRenderer(device, prog, o)
}

func newRenderer(device *wgpu.Device, prog *shader.Program, o options) (*Renderer, error) {
	if prog == nil {
		return nil, fmt.Errorf("%w: %w", shapes.ErrInit, ErrNilProgram)
	}
	if o.format == gputypes.TextureFormatUndefined {
		o.format = gputypes.TextureFormatBGRA8Unorm
	}
	r := &Renderer{
		device: device,
		queue:  device.Queue(),
		format: o.format,
		clear:  o.clear,
		bufs:   make(map[shapes.Buffer]*vertexBuffers),
	}
	if err := r.createPipelines(prog); err != nil {
		r.destroyPipelines()
		return nil, fmt.Errorf("%w: %w", shapes.ErrInit, err)
	}
	shapes.Logger().Info("gpu: renderer ready", "format", fmt.Sprint(r.format))
	return r, nil
}

// createPipelines builds the shader modules and one pipeline per mode.
func (r *Renderer) createPipelines(prog *shader.Program) error {
	vs, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "shapes_vertex",
		WGSL:  prog.Sources.Vertex,
	})
	if err != nil {
		return fmt.Errorf("create vertex shader module: %w", err)
	}
	r.vsModule = vs

	fs, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "shapes_fragment",
		WGSL:  prog.Sources.Fragment,
	})
	if err != nil {
		return fmt.Errorf("create fragment shader module: %w", err)
	}
	r.fsModule = fs

	layout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "shapes_pipe_layout",
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	r.pipeLayout = layout

	for _, mode := range []shapes.Mode{shapes.Triangles, shapes.Lines} {
		p, err := r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
			Label:  "shapes_" + mode.String(),
			Layout: r.pipeLayout,
			Vertex: wgpu.VertexState{
				Module:     r.vsModule,
				EntryPoint: shader.VertexEntry,
				Buffers:    vertexLayouts(),
			},
			Fragment: &wgpu.FragmentState{
				Module:     r.fsModule,
				EntryPoint: shader.FragmentEntry,
				Targets: []gputypes.ColorTargetState{
					{
						Format:    r.format,
						WriteMask: gputypes.ColorWriteMaskAll,
					},
				},
			},
			Primitive:   primitiveState(mode),
			Multisample: singleSample(),
		})
		if err != nil {
			return fmt.Errorf("create %s pipeline: %w", mode, err)
		}
		r.pipelines[mode] = p
	}
	return nil
}

func (r *Renderer) destroyPipelines() {
	for i, p := range r.pipelines {
		if p != nil {
			p.Release()
			r.pipelines[i] = nil
		}
	}
	if r.pipeLayout != nil {
		r.pipeLayout.Release()
		r.pipeLayout = nil
	}
	if r.fsModule != nil {
		r.fsModule.Release()
		r.fsModule = nil
	}
	if r.vsModule != nil {
		r.vsModule.Release()
		r.vsModule = nil
	}
}

// SetTarget sets the texture view the next Draw renders into. gogpu hands
// out a new surface view every frame, so call this from each OnDraw.
// A nil view clears the target.
func (r *Renderer) SetTarget(view *wgpu.TextureView, width, height uint32) {
	r.target = view
	if view == nil {
		return
	}
	r.width, r.height = width, height
}

// Upload copies g into a position buffer and a color buffer.
func (r *Renderer) Upload(g *shapes.Geometry) (shapes.Buffer, error) {
	if r.closed {
		return 0, shapes.ErrClosed
	}
	if g.Len() == 0 {
		return 0, &shapes.GraphicsError{Op: "upload", Err: ErrEmptyGeometry}
	}
	positions, colors := geometryBytes(g)

	r.device.PushErrorScope(wgpu.ErrorFilterValidation)
	vb, err := r.createVertexBuffers(positions, colors)
	if scopeErr := r.popErrorScope(); scopeErr != nil && err == nil {
		err = scopeErr
	}
	if err != nil {
		vb.release()
		return 0, &shapes.GraphicsError{Op: "upload", Err: err}
	}
	vb.count = uint32(g.Len())

	r.next++
	r.bufs[r.next] = vb
	shapes.Logger().Debug("gpu: uploaded", "buffer", uint32(r.next), "vertices", g.Len(),
		"bytes", len(positions)+len(colors))
	return r.next, nil
}

func (r *Renderer) createVertexBuffers(positions, colors []byte) (*vertexBuffers, error) {
	vb := &vertexBuffers{}
	var err error
	vb.positions, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "shapes_positions",
		Size:  uint64(len(positions)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return vb, fmt.Errorf("create position buffer: %w", err)
	}
	vb.colors, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "shapes_colors",
		Size:  uint64(len(colors)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return vb, fmt.Errorf("create color buffer: %w", err)
	}
	if err := r.queue.WriteBuffer(vb.positions, 0, positions); err != nil {
		return vb, fmt.Errorf("write position buffer: %w", err)
	}
	if err := r.queue.WriteBuffer(vb.colors, 0, colors); err != nil {
		return vb, fmt.Errorf("write color buffer: %w", err)
	}
	return vb, nil
}

// popErrorScope returns the error captured by the innermost scope, or nil.
func (r *Renderer) popErrorScope() error {
	if gpuErr := r.device.PopErrorScope(); gpuErr != nil {
		return gpuErr
	}
	return nil
}

// Release frees the buffers behind b after in-flight work has finished.
func (r *Renderer) Release(b shapes.Buffer) {
	vb, ok := r.bufs[b]
	if !ok {
		return
	}
	delete(r.bufs, b)
	r.drainQueue()
	vb.release()
	shapes.Logger().Debug("gpu: released", "buffer", uint32(b))
}

// drainQueue waits for submitted work and frees the last command buffer.
func (r *Renderer) drainQueue() {
	if r.prevCmdBuf == nil {
		return
	}
	if err := r.device.WaitIdle(); err != nil {
		shapes.Logger().Warn("gpu: wait idle failed", "err", err)
	}
	r.device.FreeCommandBuffer(r.prevCmdBuf)
	r.prevCmdBuf = nil
}

// Draw clears the target and draws the first count vertices of b.
func (r *Renderer) Draw(b shapes.Buffer, mode shapes.Mode, count int) error {
	if r.closed {
		return shapes.ErrClosed
	}
	if r.target == nil {
		return &shapes.GraphicsError{Op: "draw", Err: ErrNoTarget}
	}
	if mode != shapes.Triangles && mode != shapes.Lines {
		return &shapes.GraphicsError{Op: "draw", Err: fmt.Errorf("unknown mode %d", int(mode))}
	}
	var vb *vertexBuffers
	if b != 0 {
		var ok bool
		if vb, ok = r.bufs[b]; !ok {
			return &shapes.GraphicsError{Op: "draw", Err: fmt.Errorf("%w: %d", shapes.ErrUnknownBuffer, b)}
		}
		if count < 0 || uint32(count) > vb.count {
			count = int(vb.count)
		}
	}
	r.drainQueue()

	r.device.PushErrorScope(wgpu.ErrorFilterValidation)
	err := r.encodeAndSubmit(vb, mode, uint32(count))
	if scopeErr := r.popErrorScope(); scopeErr != nil && err == nil {
		err = scopeErr
	}
	if err != nil {
		return &shapes.GraphicsError{Op: "draw", Err: err}
	}
	return nil
}

func (r *Renderer) encodeAndSubmit(vb *vertexBuffers, mode shapes.Mode, count uint32) error {
	encoder, err := r.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "shapes_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	encoderConsumed := false
	defer func() {
		if !encoderConsumed {
			encoder.DiscardEncoding()
		}
	}()

	rp, err := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "shapes_pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       r.target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: r.clear,
		}},
	})
	if err != nil {
		return fmt.Errorf("begin render pass: %w", err)
	}
	rp.SetViewport(0, 0, float32(r.width), float32(r.height), 0, 1)
	if vb != nil && count > 0 {
		rp.SetPipeline(r.pipelines[mode])
		rp.SetVertexBuffer(0, vb.positions, 0)
		rp.SetVertexBuffer(1, vb.colors, 0)
		rp.Draw(count, 1, 0, 0)
	}
	if err := rp.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	cmdBuf, err := encoder.Finish()
	if err != nil {
		return fmt.Errorf("finish encoding: %w", err)
	}
	encoderConsumed = true

	if _, err := r.queue.Submit(cmdBuf); err != nil {
		r.device.FreeCommandBuffer(cmdBuf)
		return fmt.Errorf("submit: %w", err)
	}
	r.prevCmdBuf = cmdBuf
	return nil
}

// Close releases every buffer and pipeline. The device belongs to the
// caller and is not released. Close is idempotent.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.drainQueue()
	for b, vb := range r.bufs {
		vb.release()
		delete(r.bufs, b)
	}
	r.destroyPipelines()
	r.target = nil
	return nil
}

// Live returns the number of uploaded buffers not yet released.
func (r *Renderer) Live() int {
	return len(r.bufs)
}
