// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"github.com/gogpu/g2d/internal/gpu"
	"github.com/gogpu/wgpu/hal"
)

// Target is a render target pair: a color attachment and a
// Depth24PlusStencil8 attachment for stencil clipping. A frame borrows the
// target for the duration of one WithFrame scope.
//
// Targets are either renderer-created offscreen pairs (Renderer.CreateTarget,
// readable back with Renderer.ReadPixels) or wrapped around caller-owned
// views such as a surface frame (WrapTarget).
type Target struct {
	textures    *gpu.TargetTextures
	colorView   hal.TextureView
	stencilView hal.TextureView
	width       uint32
	height      uint32
	device      hal.Device
}

// WrapTarget borrows caller-owned color and stencil views. The stencil view
// must be a Depth24PlusStencil8 attachment of the same size as the color
// view. The caller keeps ownership; Destroy is a no-op.
func WrapTarget(colorView, stencilView hal.TextureView, w, h uint32) *Target {
	return &Target{
		colorView:   colorView,
		stencilView: stencilView,
		width:       w,
		height:      h,
	}
}

// Size returns the target dimensions in pixels.
func (t *Target) Size() (w, h uint32) { return t.width, t.height }

// Destroy releases renderer-created attachments. Wrapped targets are not
// owned and Destroy leaves them alone. Safe to call twice.
func (t *Target) Destroy() {
	if t.textures == nil || t.device == nil {
		return
	}
	t.textures.Destroy(t.device)
	t.textures = nil
	t.colorView = nil
	t.stencilView = nil
	t.device = nil
}
