// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"errors"

	"github.com/gogpu/g2d/internal/gpu"
)

// Sentinel errors for input-contract violations. All are returned wrapped
// with the offending values; test with errors.Is. A failed batch Submit
// aborts only that draw, never the frame or the renderer.
var (
	// ErrVertexCountMismatch reports a textured Submit whose position and
	// texture coordinate slices disagree on the vertex count.
	ErrVertexCountMismatch = errors.New("g2d: position and texcoord counts differ")

	// ErrScissorRange reports a scissor rectangle component outside
	// [0, 65535].
	ErrScissorRange = errors.New("g2d: scissor component out of range")

	// ErrFrameEnded reports use of a Frame or batch after its WithFrame
	// scope returned.
	ErrFrameEnded = errors.New("g2d: frame already ended")

	// ErrTargetSize reports a zero-sized render target.
	ErrTargetSize = errors.New("g2d: invalid target size")

	// ErrNoHALDevice reports a device provider that cannot supply HAL
	// device and queue handles.
	ErrNoHALDevice = errors.New("g2d: provider does not expose a HAL device")
)

// ErrVertexCapacity reports a batch whose vertex count exceeds the pool
// capacity configured with WithMaxVertexCount.
var ErrVertexCapacity = gpu.ErrVertexCapacity
