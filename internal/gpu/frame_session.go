package gpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// gpuWaitTimeout bounds the frame-end fence wait.
const gpuWaitTimeout = 5 * time.Second

// Viewport is the render area applied to every pass of a frame, in pixels.
type Viewport struct {
	X, Y, W, H float32
}

// ScissorBox is a validated scissor rectangle in pixels. Boxes are clamped
// to the attachment extent at encode time.
type ScissorBox struct {
	X, Y, W, H uint32
}

// FrameStats counts the work a frame session submitted.
type FrameStats struct {
	DrawCalls int
	Vertices  uint32
	Clears    int
}

// DrawParams carries everything one draw call needs. The entry comes from a
// pipeline matrix Select, the scissor box from the caller's validated draw
// state, the color already converted to linear. A non-nil TextureView selects
// the textured path and requires TexCoords.
type DrawParams struct {
	Entry       *PipelineEntry
	StencilRef  uint8
	Scissor     ScissorBox
	Color       [4]float32
	TextureView hal.TextureView
	Positions   []float32
	TexCoords   []float32
}

// FrameSession scopes rendering to one target for one frame. Every clear and
// draw encodes its own command buffer and submits it immediately; queue
// submission order is the draw order. A frame-lifetime fence is signaled by
// each submission with an increasing value, and End waits for the last one
// before releasing command buffers and transient bind groups.
//
// Sessions are single-goroutine and must not be used after End.
type FrameSession struct {
	engine   *Engine
	color    hal.TextureView
	stencil  hal.TextureView
	width    uint32
	height   uint32
	viewport Viewport

	fence      hal.Fence
	fenceValue uint64
	cmdBufs    []hal.CommandBuffer
	transients []hal.BindGroup

	stats FrameStats
	ended bool
}

// BeginFrame opens a frame session on the given attachment views.
func (e *Engine) BeginFrame(color, stencil hal.TextureView, w, h uint32, vp Viewport) (*FrameSession, error) {
	fence, err := e.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create frame fence: %w", err)
	}
	return &FrameSession{
		engine:   e,
		color:    color,
		stencil:  stencil,
		width:    w,
		height:   h,
		viewport: vp,
		fence:    fence,
	}, nil
}

// Stats returns the work counters accumulated so far.
func (s *FrameSession) Stats() FrameStats { return s.stats }

// ClearColor clears the color attachment to the given linear value and
// leaves the stencil attachment untouched.
func (s *FrameSession) ClearColor(rgba [4]float32) error {
	err := s.encodeAndSubmit("clear_color", func(encoder hal.CommandEncoder) error {
		rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
			Label: "clear_color_pass",
			ColorAttachments: []hal.RenderPassColorAttachment{{
				View:    s.color,
				LoadOp:  gputypes.LoadOpClear,
				StoreOp: gputypes.StoreOpStore,
				ClearValue: gputypes.Color{
					R: float64(rgba[0]),
					G: float64(rgba[1]),
					B: float64(rgba[2]),
					A: float64(rgba[3]),
				},
			}},
			DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
				View:           s.stencil,
				DepthLoadOp:    gputypes.LoadOpLoad,
				DepthStoreOp:   gputypes.StoreOpStore,
				StencilLoadOp:  gputypes.LoadOpLoad,
				StencilStoreOp: gputypes.StoreOpStore,
			},
		})
		rp.End()
		return nil
	})
	if err != nil {
		return err
	}
	s.stats.Clears++
	return nil
}

// ClearStencil clears the stencil attachment to the given value and leaves
// the color attachment untouched. Depth is reset alongside; no pipeline ever
// reads it (compare Always), so the reset is invisible but keeps the
// attachment fully defined after the usual frame-start clears.
func (s *FrameSession) ClearStencil(value uint8) error {
	err := s.encodeAndSubmit("clear_stencil", func(encoder hal.CommandEncoder) error {
		rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
			Label: "clear_stencil_pass",
			ColorAttachments: []hal.RenderPassColorAttachment{{
				View:    s.color,
				LoadOp:  gputypes.LoadOpLoad,
				StoreOp: gputypes.StoreOpStore,
			}},
			DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
				View:              s.stencil,
				DepthLoadOp:       gputypes.LoadOpClear,
				DepthStoreOp:      gputypes.StoreOpStore,
				DepthClearValue:   1.0,
				StencilLoadOp:     gputypes.LoadOpClear,
				StencilStoreOp:    gputypes.StoreOpStore,
				StencilClearValue: uint32(value),
			},
		})
		rp.End()
		return nil
	})
	if err != nil {
		return err
	}
	s.stats.Clears++
	return nil
}

// Draw uploads one vertex batch through the pool and issues exactly one draw
// call with the entry's pipeline. Returns the drawn vertex count. An empty
// batch uploads nothing, draws nothing, and is not an error. Textured draws
// get a transient texture/sampler bind group that lives until End.
func (s *FrameSession) Draw(p *DrawParams) (uint32, error) {
	count, err := s.engine.pool.UploadPositions(s.engine.queue, p.Positions)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	var texBG hal.BindGroup
	if p.TextureView != nil {
		if _, err := s.engine.pool.UploadTexCoords(s.engine.queue, p.TexCoords); err != nil {
			return 0, err
		}
		texBG, err = s.engine.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  "batch_texture_bind",
			Layout: s.engine.textureLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.TextureViewBinding{
					TextureView: p.TextureView.NativeHandle(),
				}},
				{Binding: 1, Resource: gputypes.SamplerBinding{
					Sampler: s.engine.sampler.NativeHandle(),
				}},
			},
		})
		if err != nil {
			return 0, fmt.Errorf("create texture bind group: %w", err)
		}
		s.transients = append(s.transients, texBG)
	}

	// The shared uniform carries this batch's color. The write is queue
	// ordered, so it lands before this draw's submission and after every
	// earlier one.
	s.engine.queue.WriteBuffer(s.engine.uniformBuf, 0, colorBytes(p.Color))

	scissor := clampScissor(p.Scissor, s.width, s.height)
	err = s.encodeAndSubmit("draw_batch", func(encoder hal.CommandEncoder) error {
		rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
			Label: "draw_pass",
			ColorAttachments: []hal.RenderPassColorAttachment{{
				View:    s.color,
				LoadOp:  gputypes.LoadOpLoad,
				StoreOp: gputypes.StoreOpStore,
			}},
			DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
				View:           s.stencil,
				DepthLoadOp:    gputypes.LoadOpLoad,
				DepthStoreOp:   gputypes.StoreOpStore,
				StencilLoadOp:  gputypes.LoadOpLoad,
				StencilStoreOp: gputypes.StoreOpStore,
			},
		})
		rp.SetViewport(s.viewport.X, s.viewport.Y, s.viewport.W, s.viewport.H, 0, 1)
		rp.SetScissorRect(scissor.X, scissor.Y, scissor.W, scissor.H)
		rp.SetStencilReference(uint32(p.StencilRef))
		// Opaque white, the constant the Invert blend function subtracts
		// the destination from. Harmless for every other mode.
		white := gputypes.Color{R: 1, G: 1, B: 1, A: 1}
		rp.SetBlendConstant(&white)
		rp.SetPipeline(p.Entry.pipeline)
		rp.SetBindGroup(0, s.engine.uniformBG, nil)
		if texBG != nil {
			rp.SetBindGroup(1, texBG, nil)
		}
		rp.SetVertexBuffer(0, s.engine.pool.positions, 0)
		if texBG != nil {
			rp.SetVertexBuffer(1, s.engine.pool.texCoords, 0)
		}
		rp.Draw(count, 1, 0, 0)
		rp.End()
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.stats.DrawCalls++
	s.stats.Vertices += count
	return count, nil
}

// End waits for every submission of the frame, then frees command buffers,
// transient bind groups, and the fence. Idempotent; later calls return nil
// without touching the device.
func (s *FrameSession) End() error {
	if s.ended {
		return nil
	}
	s.ended = true

	var err error
	if s.fenceValue > 0 {
		ok, werr := s.engine.device.Wait(s.fence, s.fenceValue, gpuWaitTimeout)
		if werr != nil || !ok {
			err = fmt.Errorf("wait for GPU: ok=%v err=%w", ok, werr)
		}
	}
	for _, cb := range s.cmdBufs {
		s.engine.device.FreeCommandBuffer(cb)
	}
	s.cmdBufs = nil
	for _, bg := range s.transients {
		s.engine.device.DestroyBindGroup(bg)
	}
	s.transients = nil
	if s.fence != nil {
		s.engine.device.DestroyFence(s.fence)
		s.fence = nil
	}

	slogger().Debug("frame ended",
		"draw_calls", s.stats.DrawCalls,
		"vertices", s.stats.Vertices,
		"clears", s.stats.Clears)
	return err
}

// encodeAndSubmit runs record inside a fresh command encoder and submits the
// resulting command buffer with the next fence value. The command buffer is
// retained until End so the submission can complete at its own pace.
func (s *FrameSession) encodeAndSubmit(label string, record func(encoder hal.CommandEncoder) error) error {
	encoder, err := s.engine.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}
	if err := record(encoder); err != nil {
		encoder.DiscardEncoding()
		return err
	}
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}

	s.fenceValue++
	if err := s.engine.queue.Submit([]hal.CommandBuffer{cmdBuf}, s.fence, s.fenceValue); err != nil {
		// The fence will never reach this value; roll back so End does not
		// wait for a signal that cannot arrive.
		s.fenceValue--
		s.engine.device.FreeCommandBuffer(cmdBuf)
		return fmt.Errorf("submit: %w", err)
	}
	s.cmdBufs = append(s.cmdBufs, cmdBuf)
	return nil
}

// clampScissor intersects a validated scissor box with the attachment
// extent; the HAL rejects boxes reaching past the target.
func clampScissor(b ScissorBox, w, h uint32) ScissorBox {
	if b.X > w {
		b.X = w
	}
	if b.Y > h {
		b.Y = h
	}
	if b.X+b.W > w {
		b.W = w - b.X
	}
	if b.Y+b.H > h {
		b.H = h - b.Y
	}
	return b
}

// colorBytes serializes a linear color into the 16-byte uniform block,
// little-endian float32 components.
func colorBytes(rgba [4]float32) []byte {
	buf := make([]byte, uniformSize)
	for i, v := range rgba {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
