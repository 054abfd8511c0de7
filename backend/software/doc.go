// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package software renders shape geometry on the CPU with gogpu/gg.
//
// The Renderer implements shapes.Backend without a GPU: uploaded geometry is
// kept in memory and every Draw rasterises the selected buffer into a square
// pixmap. It backs headless snapshots and tests.
//
// # Usage
//
//	r := software.New(software.WithSize(512))
//	defer r.Close()
//
//	scene, err := shapes.NewScene(r, shapes.WithFamily(shapes.Sierpinski))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.SetCaption("sierpinski L1")
//	if err := scene.Draw(); err != nil {
//	    log.Fatal(err)
//	}
//	_ = r.SavePNG("sierpinski.png")
//
// # Mapping
//
// Normalized device coordinates map onto pixels with y pointing up, so
// (-1,-1) is the bottom-left corner of the image. Colour channels are
// clamped to [0,1] when painted. Triangles are filled with the colour of
// their first vertex and lines are stroked one pixel wide.
package software
