package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// copyPitchAlignment is the BytesPerRow alignment WebGPU and DX12 require
// for texture-to-buffer copies.
const copyPitchAlignment = 256

// ReadPixels copies a color texture into CPU memory and returns tightly
// packed RGBA8 bytes, row-major, w*h*4 long. BGRA targets are swizzled to
// RGBA on the way out. The call submits its own command buffer and blocks
// until the copy completes, so it must not run between BeginFrame and End.
func (e *Engine) ReadPixels(tex hal.Texture, w, h uint32) ([]byte, error) {
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("read pixels: empty extent %dx%d", w, h)
	}

	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "readback_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer e.device.DestroyBuffer(stagingBuf)

	encoder, err := e.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "readback"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("readback"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	// Vulkan and DX12 track image layouts. The texture sits in the render
	// attachment layout after a frame; the copy needs the transfer-source
	// layout, and the next frame needs it back. No-op on other backends.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(tex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer e.device.FreeCommandBuffer(cmdBuf)

	fence, err := e.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer e.device.DestroyFence(fence)

	if err := e.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := e.device.Wait(fence, 1, gpuWaitTimeout)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingSize)
	if err := e.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	// Strip per-row alignment padding.
	tight := readback
	if alignedBytesPerRow != bytesPerRow {
		tight = make([]byte, uint64(bytesPerRow)*uint64(h))
		for row := uint32(0); row < h; row++ {
			srcOff := int(row) * int(alignedBytesPerRow)
			dstOff := int(row) * int(bytesPerRow)
			copy(tight[dstOff:dstOff+int(bytesPerRow)], readback[srcOff:srcOff+int(bytesPerRow)])
		}
	}

	pixels := int(w) * int(h)
	out := make([]byte, pixels*4)
	if isBGRA(e.colorFormat) {
		convertBGRAToRGBA(tight, out, pixels)
	} else {
		copy(out, tight[:pixels*4])
	}
	return out, nil
}

func isBGRA(format gputypes.TextureFormat) bool {
	return format == gputypes.TextureFormatBGRA8Unorm ||
		format == gputypes.TextureFormatBGRA8UnormSrgb
}

// convertBGRAToRGBA swaps the blue and red channels of pixels 4-byte pixels,
// reading from src into dst and leaving green and alpha in place.
func convertBGRAToRGBA(src, dst []byte, pixels int) {
	for i := 0; i < pixels; i++ {
		off := i * 4
		dst[off+0] = src[off+2]
		dst[off+1] = src[off+1]
		dst[off+2] = src[off+0]
		dst[off+3] = src[off+3]
	}
}
