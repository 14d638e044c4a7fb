// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"fmt"
	"image"

	"github.com/gogpu/g2d/internal/gpu"
	"github.com/gogpu/wgpu/hal"
)

// Renderer owns the compiled pipeline matrices, the pooled vertex buffers,
// and the shared draw-uniform resources. Construction compiles both shader
// programs and all forty pipelines; afterwards no draw ever creates GPU
// state.
//
// A Renderer and its frames belong to one goroutine at a time. Only
// SetLogger is safe to call concurrently.
type Renderer struct {
	engine *gpu.Engine
}

// NewRenderer creates a renderer on a host-owned device and queue. The
// device must outlive the renderer. Construction failures destroy every
// partially created resource and name the failing stage.
func NewRenderer(device hal.Device, queue hal.Queue, opts ...Option) (*Renderer, error) {
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}
	engine, err := gpu.NewEngine(device, queue, &gpu.Config{
		MaxVertexCount: o.maxVertexCount,
		ColorFormat:    o.colorFormat,
		Dialect:        o.dialect,
		ColoredWGSL:    o.coloredWGSL,
		TexturedWGSL:   o.texturedWGSL,
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{engine: engine}, nil
}

// MaxVertexCount returns the vertex capacity of the pooled buffers.
func (r *Renderer) MaxVertexCount() uint32 { return r.engine.MaxVertexCount() }

// CreateTarget creates an offscreen render target pair in the renderer's
// color format. The result can be rendered to with WithFrame and read back
// with ReadPixels.
func (r *Renderer) CreateTarget(w, h uint32) (*Target, error) {
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTargetSize, w, h)
	}
	textures, err := gpu.NewTargetTextures(r.engine.Device(), w, h, r.engine.ColorFormat(), "g2d_target")
	if err != nil {
		return nil, err
	}
	return &Target{
		textures:    textures,
		colorView:   textures.ColorView(),
		stencilView: textures.StencilView(),
		width:       w,
		height:      h,
		device:      r.engine.Device(),
	}, nil
}

// ReadPixels copies a renderer-created target's color attachment into an
// *image.RGBA. It blocks until the GPU finishes; call it after WithFrame
// returns, never inside. Wrapped targets cannot be read back, their
// texture belongs to the caller.
func (r *Renderer) ReadPixels(t *Target) (*image.RGBA, error) {
	if t == nil || t.textures == nil {
		return nil, fmt.Errorf("g2d: readback requires a renderer-created target")
	}
	data, err := r.engine.ReadPixels(t.textures.ColorTexture(), t.width, t.height)
	if err != nil {
		return nil, err
	}
	return &image.RGBA{
		Pix:    data,
		Stride: int(t.width) * 4,
		Rect:   image.Rect(0, 0, int(t.width), int(t.height)),
	}, nil
}

// WithFrame renders one frame to the target. It opens a frame session,
// invokes body, then waits for every submission of the frame and releases
// the frame's transient resources. The Frame (and any batches created from
// it) is invalid after WithFrame returns; later use yields ErrFrameEnded.
//
// A zero-value viewport selects the full target. The viewport is clamped
// to the target extent.
func (r *Renderer) WithFrame(target *Target, vp Viewport, body func(*Frame) error) error {
	if target == nil || target.width == 0 || target.height == 0 {
		return fmt.Errorf("%w: frame needs a non-empty target", ErrTargetSize)
	}

	session, err := r.engine.BeginFrame(
		target.colorView, target.stencilView,
		target.width, target.height,
		clampViewport(vp, target.width, target.height),
	)
	if err != nil {
		return err
	}

	frame := &Frame{renderer: r, session: session, viewport: vp}
	bodyErr := body(frame)
	frame.ended = true

	if endErr := session.End(); endErr != nil && bodyErr == nil {
		bodyErr = endErr
	}
	return bodyErr
}

// Destroy releases every GPU object the renderer owns. Targets created
// with CreateTarget are released separately. Safe to call twice.
func (r *Renderer) Destroy() {
	if r.engine != nil {
		r.engine.Destroy()
	}
}

// clampViewport intersects the viewport with the target extent. The zero
// value becomes the full target.
func clampViewport(vp Viewport, w, h uint32) gpu.Viewport {
	if vp == (Viewport{}) {
		return gpu.Viewport{W: float32(w), H: float32(h)}
	}
	x := clampInt(vp.X, 0, int(w))
	y := clampInt(vp.Y, 0, int(h))
	vw := clampInt(vp.W, 0, int(w)-x)
	vh := clampInt(vp.H, 0, int(h)-y)
	return gpu.Viewport{X: float32(x), Y: float32(y), W: float32(vw), H: float32(vh)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
