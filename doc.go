// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package g2d is a 2D triangle-list rendering back end over WebGPU.
//
// g2d adapts a small declarative drawing abstraction (colored and textured
// triangle lists with blending, stencil-based clipping, and scissoring)
// onto the WebGPU command-buffer model via github.com/gogpu/wgpu/hal. All
// pipeline state is compiled up front: renderer construction builds a fixed
// clip x blend matrix of render pipelines per shader program, and every draw
// call is a pure pipeline lookup plus one vertex upload. Nothing is compiled
// or allocated on the hot path.
//
// # Key Principle
//
// g2d RECEIVES a GPU device from the host application; it does not create
// one unless asked. Hosts that own a device pass it to [NewRenderer]; hosts
// built on the gpucontext ecosystem use [NewRendererFromProvider]; examples
// and tools can fall back to [OpenDevice].
//
// # Rendering Model
//
// A [Renderer] owns the compiled pipelines and two fixed-capacity vertex
// buffers. Rendering happens inside a [Renderer.WithFrame] scope:
//
//	err := r.WithFrame(target, g2d.Viewport{W: 800, H: 600}, func(f *g2d.Frame) error {
//	    if err := f.ClearColor(g2d.Color{R: 1, G: 1, B: 1, A: 1}); err != nil {
//	        return err
//	    }
//	    batch, err := f.ColoredTriangles(g2d.DrawState{Blend: g2d.BlendAlpha}, red)
//	    if err != nil {
//	        return err
//	    }
//	    return batch.Submit([]float32{0, -0.5, 0.5, 0.5, -0.5, 0.5})
//	})
//
// Each clear and each batch Submit issues exactly one queue submission, so
// draws execute in invocation order. When WithFrame returns, all GPU work
// of the frame has completed and the Frame is invalid.
//
// # Clipping
//
// Clipping is stencil-based. Draw the clip shape with [ClipMask] (which
// writes only the stencil buffer), then draw content with [ClipInside] or
// [ClipOutside] and the same reference value. [Frame.ClearStencil] resets
// the mask.
//
// # Colors
//
// [Color] components are sRGB at the API boundary. Clears and per-batch
// colors are converted to linear space (alpha untouched) before they reach
// the GPU, so blending happens in linear space against sRGB-authored values.
package g2d
