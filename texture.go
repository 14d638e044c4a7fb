// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	xdraw "golang.org/x/image/draw"
)

// Texture is a GPU-resident image plus its pixel-format metadata. Textured
// draws sample it through the renderer's shared clamp/linear sampler.
//
// A Texture either owns its GPU objects (NewTextureFromImage) or borrows a
// caller-owned view (WrapTexture); Destroy only releases what is owned.
type Texture struct {
	view   hal.TextureView
	tex    hal.Texture
	device hal.Device
	width  uint32
	height uint32
	format SurfaceFormat
	owned  bool
}

// WrapTexture borrows a caller-owned texture view. The format metadata
// drives HasTextureAlpha; the caller keeps ownership of the view.
func WrapTexture(view hal.TextureView, w, h uint32, format SurfaceFormat) *Texture {
	return &Texture{
		view:   view,
		width:  w,
		height: h,
		format: format,
	}
}

// NewTextureFromImage uploads an image to the GPU as an RGBA8 texture.
// Non-RGBA images are converted first. The returned texture owns its GPU
// objects; release them with Destroy.
func NewTextureFromImage(device hal.Device, queue hal.Queue, img image.Image) (*Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d image", ErrTargetSize, w, h)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) {
		converted := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(converted, converted.Bounds(), img, b.Min, xdraw.Src)
		rgba = converted
	}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "g2d_image",
		Size:          hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create image texture: %w", err)
	}

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "g2d_image_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return nil, fmt.Errorf("create image texture view: %w", err)
	}

	// *image.RGBA rows can carry stride padding; WriteTexture expects the
	// tightly packed layout declared below.
	data := rgba.Pix
	if rgba.Stride != w*4 {
		data = make([]byte, w*h*4)
		for row := 0; row < h; row++ {
			copy(data[row*w*4:(row+1)*w*4], rgba.Pix[row*rgba.Stride:row*rgba.Stride+w*4])
		}
	}
	queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   hal.Origin3D{},
			Aspect:   gputypes.TextureAspectAll,
		},
		data,
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: uint32(w) * 4, RowsPerImage: uint32(h)},
		&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)

	return &Texture{
		view:   view,
		tex:    tex,
		device: device,
		width:  uint32(w),
		height: uint32(h),
		format: SurfaceR8G8B8A8,
		owned:  true,
	}, nil
}

// View returns the HAL texture view draws sample from.
func (t *Texture) View() hal.TextureView { return t.view }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (w, h uint32) { return t.width, t.height }

// Format returns the surface format metadata.
func (t *Texture) Format() SurfaceFormat { return t.format }

// Destroy releases owned GPU objects. Wrapped textures are not owned and
// Destroy leaves them alone. Safe to call twice.
func (t *Texture) Destroy() {
	if !t.owned || t.device == nil {
		return
	}
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.device.DestroyTexture(t.tex)
		t.tex = nil
	}
	t.device = nil
}
