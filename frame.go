// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"fmt"

	"github.com/gogpu/g2d/internal/gpu"
)

// FrameStats counts the work a frame submitted: draw calls, vertices and
// clear operations.
type FrameStats = gpu.FrameStats

// Frame is a one-frame rendering scope bound to a target. Frames are
// created only by Renderer.WithFrame and become invalid when it returns;
// any later operation yields ErrFrameEnded.
type Frame struct {
	renderer *Renderer
	session  *gpu.FrameSession
	viewport Viewport
	ended    bool
}

// Viewport returns the viewport requested for this frame, before clamping
// to the target extent.
func (f *Frame) Viewport() Viewport { return f.viewport }

// Stats returns the work counters accumulated so far in this frame.
func (f *Frame) Stats() FrameStats { return f.session.Stats() }

// HasTextureAlpha reports whether the texture's surface format carries an
// alpha channel. Callers use this to pick BlendAlpha over BlendNone when
// drawing images.
func (f *Frame) HasTextureAlpha(t *Texture) bool {
	return t.Format().HasAlphaChannel()
}

// ClearColor clears the color attachment to the given color, converted to
// linear space. The stencil attachment is preserved.
func (f *Frame) ClearColor(c Color) error {
	if f.ended {
		return ErrFrameEnded
	}
	return f.session.ClearColor(c.linear())
}

// ClearStencil clears the stencil attachment to the given value. The color
// attachment is preserved. Clearing to 0 discards all clip masks.
func (f *Frame) ClearStencil(v uint8) error {
	if f.ended {
		return ErrFrameEnded
	}
	return f.session.ClearStencil(v)
}

// ColoredTriangles starts a flat-color batch with the given draw state.
// The scissor rectangle is validated here; the pipeline and stencil
// reference are selected once and reused by every Submit.
func (f *Frame) ColoredTriangles(state DrawState, color Color) (*ColoredBatch, error) {
	if f.ended {
		return nil, ErrFrameEnded
	}
	scissor, err := scissorBox(state.Scissor)
	if err != nil {
		return nil, err
	}
	entry, ref := f.renderer.engine.Colored().Select(state.Clip, state.Blend)
	return &ColoredBatch{
		frame:      f,
		entry:      entry,
		stencilRef: ref,
		scissor:    scissor,
		color:      color.linear(),
	}, nil
}

// TexturedTriangles starts a textured batch with the given draw state. The
// texture is sampled through the renderer's clamp/linear sampler and
// modulated by the color.
func (f *Frame) TexturedTriangles(state DrawState, color Color, tex *Texture) (*TexturedBatch, error) {
	if f.ended {
		return nil, ErrFrameEnded
	}
	if tex == nil || tex.View() == nil {
		return nil, fmt.Errorf("g2d: textured batch needs a texture")
	}
	scissor, err := scissorBox(state.Scissor)
	if err != nil {
		return nil, err
	}
	entry, ref := f.renderer.engine.Textured().Select(state.Clip, state.Blend)
	return &TexturedBatch{
		frame:      f,
		entry:      entry,
		stencilRef: ref,
		scissor:    scissor,
		color:      color.linear(),
		texture:    tex,
	}, nil
}

// ColoredBatch draws flat-color triangle lists with one fixed draw state.
// Submit may be called any number of times; each call is one draw.
type ColoredBatch struct {
	frame      *Frame
	entry      *gpu.PipelineEntry
	stencilRef uint8
	scissor    gpu.ScissorBox
	color      [4]float32
}

// Submit uploads one triangle list (two float32 components per vertex) and
// issues exactly one draw call of len(positions)/2 vertices. An empty
// slice draws nothing and is not an error.
func (b *ColoredBatch) Submit(positions []float32) error {
	if b.frame.ended {
		return ErrFrameEnded
	}
	_, err := b.frame.session.Draw(&gpu.DrawParams{
		Entry:      b.entry,
		StencilRef: b.stencilRef,
		Scissor:    b.scissor,
		Color:      b.color,
		Positions:  positions,
	})
	return err
}

// TexturedBatch draws textured triangle lists with one fixed draw state
// and texture.
type TexturedBatch struct {
	frame      *Frame
	entry      *gpu.PipelineEntry
	stencilRef uint8
	scissor    gpu.ScissorBox
	color      [4]float32
	texture    *Texture
}

// Submit uploads one triangle list with texture coordinates and issues
// exactly one draw call. The two slices must agree on the vertex count;
// otherwise Submit returns ErrVertexCountMismatch and draws nothing.
func (b *TexturedBatch) Submit(positions, texcoords []float32) error {
	if b.frame.ended {
		return ErrFrameEnded
	}
	if len(positions) != len(texcoords) {
		return fmt.Errorf("%w: %d position vs %d texcoord vertices",
			ErrVertexCountMismatch, len(positions)/2, len(texcoords)/2)
	}
	_, err := b.frame.session.Draw(&gpu.DrawParams{
		Entry:       b.entry,
		StencilRef:  b.stencilRef,
		Scissor:     b.scissor,
		Color:       b.color,
		TextureView: b.texture.View(),
		Positions:   positions,
		TexCoords:   texcoords,
	})
	return err
}
