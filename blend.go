// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"github.com/gogpu/g2d/internal/gpu"
)

// BlendMode selects how a draw's source color combines with the destination.
// The zero value is BlendNone. Every mode maps to one pre-compiled pipeline
// column; selecting a mode never triggers pipeline creation.
type BlendMode = gpu.BlendMode

// Blend modes.
const (
	// BlendNone writes the source color unmodified (src One, dst Zero).
	// It runs through the same blend machinery as the other modes rather
	// than disabling blending, so all pipeline entries behave uniformly.
	BlendNone = gpu.BlendNone

	// BlendAlpha is standard source-over alpha blending:
	// color src*srcAlpha + dst*(1-srcAlpha), alpha accumulated additively.
	BlendAlpha = gpu.BlendAlpha

	// BlendAdd accumulates source into destination: dst + src.
	// Useful for glows and light effects.
	BlendAdd = gpu.BlendAdd

	// BlendMultiply multiplies destination by source: dst * src.
	// The result is always darker or equal.
	BlendMultiply = gpu.BlendMultiply

	// BlendInvert replaces covered pixels with the inverse of the
	// destination: 1 - dst wherever the source is opaque white.
	BlendInvert = gpu.BlendInvert
)
