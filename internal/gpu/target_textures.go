package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// TargetTextures holds the color and depth/stencil texture pair backing an
// offscreen render target:
//   - Color: single sample, the engine's color format, RenderAttachment | CopySrc
//     (CopySrc so the target can be read back).
//   - Depth/stencil: single sample, Depth24PlusStencil8, RenderAttachment.
//
// Unlike a swapchain frame, the pair has a fixed size for its whole lifetime.
type TargetTextures struct {
	colorTex    hal.Texture
	colorView   hal.TextureView
	stencilTex  hal.Texture
	stencilView hal.TextureView
	width       uint32
	height      uint32
}

// NewTargetTextures creates the texture pair with the given dimensions. The
// labelPrefix distinguishes GPU debug labels between different owners.
func NewTargetTextures(device hal.Device, w, h uint32, colorFormat gputypes.TextureFormat, labelPrefix string) (*TargetTextures, error) {
	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}
	t := &TargetTextures{width: w, height: h}

	colorTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         labelPrefix + "_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        colorFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create color texture: %w", err)
	}
	t.colorTex = colorTex

	colorView, err := device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label: labelPrefix + "_color_view",
	})
	if err != nil {
		t.Destroy(device)
		return nil, fmt.Errorf("create color view: %w", err)
	}
	t.colorView = colorView

	stencilTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         labelPrefix + "_depth_stencil",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatDepth24PlusStencil8,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.Destroy(device)
		return nil, fmt.Errorf("create depth/stencil texture: %w", err)
	}
	t.stencilTex = stencilTex

	stencilView, err := device.CreateTextureView(stencilTex, &hal.TextureViewDescriptor{
		Label: labelPrefix + "_depth_stencil_view",
	})
	if err != nil {
		t.Destroy(device)
		return nil, fmt.Errorf("create depth/stencil view: %w", err)
	}
	t.stencilView = stencilView

	return t, nil
}

// ColorView returns the color attachment view.
func (t *TargetTextures) ColorView() hal.TextureView { return t.colorView }

// StencilView returns the depth/stencil attachment view.
func (t *TargetTextures) StencilView() hal.TextureView { return t.stencilView }

// ColorTexture returns the color texture, the source for readback copies.
func (t *TargetTextures) ColorTexture() hal.Texture { return t.colorTex }

// Size returns the pair's dimensions in pixels.
func (t *TargetTextures) Size() (w, h uint32) { return t.width, t.height }

// Destroy releases all texture resources. Safe to call multiple times or on
// a partially constructed pair.
func (t *TargetTextures) Destroy(device hal.Device) {
	if t.stencilView != nil {
		device.DestroyTextureView(t.stencilView)
		t.stencilView = nil
	}
	if t.stencilTex != nil {
		device.DestroyTexture(t.stencilTex)
		t.stencilTex = nil
	}
	if t.colorView != nil {
		device.DestroyTextureView(t.colorView)
		t.colorView = nil
	}
	if t.colorTex != nil {
		device.DestroyTexture(t.colorTex)
		t.colorTex = nil
	}
	t.width = 0
	t.height = 0
}
