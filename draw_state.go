// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"fmt"

	"github.com/gogpu/g2d/internal/gpu"
)

// scissorMax is the largest permitted scissor component. A nil scissor
// behaves as the unbounded rectangle (0, 0, scissorMax, scissorMax).
const scissorMax = 65535

// DrawState is the declarative per-batch draw descriptor. The zero value
// draws everywhere with no blending and no clipping.
type DrawState struct {
	// Blend selects the blend function.
	Blend BlendMode

	// Clip selects the stencil interaction and reference value.
	Clip Clip

	// Scissor restricts the draw to a rectangle in target pixels. Nil
	// means unbounded. Each component must be in [0, 65535].
	Scissor *ScissorRect
}

// ScissorRect is an axis-aligned clipping rectangle in target pixels.
type ScissorRect struct {
	X, Y, W, H int
}

// Viewport is the render area of a frame, in target pixels.
type Viewport struct {
	X, Y, W, H int
}

// scissorBox validates a scissor rectangle and converts it for the render
// pass. Nil selects the unbounded rectangle; at encode time the box is
// additionally intersected with the attachment extent.
func scissorBox(r *ScissorRect) (gpu.ScissorBox, error) {
	if r == nil {
		return gpu.ScissorBox{W: scissorMax, H: scissorMax}, nil
	}
	for _, v := range [4]int{r.X, r.Y, r.W, r.H} {
		if v < 0 || v > scissorMax {
			return gpu.ScissorBox{}, fmt.Errorf("%w: (%d,%d,%d,%d)",
				ErrScissorRange, r.X, r.Y, r.W, r.H)
		}
	}
	return gpu.ScissorBox{
		X: uint32(r.X),
		Y: uint32(r.Y),
		W: uint32(r.W),
		H: uint32(r.H),
	}, nil
}
