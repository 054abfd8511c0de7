// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu implements shapes.Backend on gogpu/wgpu.
//
// Each upload becomes two vertex buffers: positions (vec2<f32>, location 0)
// and colors (vec3<f32>, location 1). Two render pipelines share the
// shader program, one per primitive mode: triangle list and line list.
//
// Draw records one render pass into the current surface view: clear to
// dark grey, bind the pipeline for the requested mode, draw, submit.
// Validation errors reported by the device during an upload or a draw
// come back as *shapes.GraphicsError and never stop the frame loop.
//
// Usage with gogpu:
//
//	r, err := gpu.FromProvider(app.GPUContextProvider(), program)
//	if err != nil {
//	    return err
//	}
//	app.OnDraw(func(dc *gogpu.Context) {
//	    w, h := dc.SurfaceSize()
//	    r.SetTarget(dc.SurfaceView(), w, h)
//	    scene.Draw()
//	})
package gpu
