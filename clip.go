// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"github.com/gogpu/g2d/internal/gpu"
)

// ClipMode selects how a draw interacts with the stencil buffer. The zero
// value is ClipNone. Like blend modes, every clip mode maps to one
// pre-compiled pipeline row.
type ClipMode = gpu.ClipMode

// Clip modes.
const (
	// ClipNone ignores the stencil buffer entirely.
	ClipNone = gpu.ClipNone

	// ClipMask paints the clip shape into the stencil buffer. The draw
	// writes the clip reference value wherever its geometry covers and
	// leaves the color attachment untouched.
	ClipMask = gpu.ClipMask

	// ClipInside draws only where the stencil buffer equals the clip
	// reference value, i.e. inside a previously painted mask.
	ClipInside = gpu.ClipInside

	// ClipOutside draws only where the stencil buffer differs from the
	// clip reference value.
	ClipOutside = gpu.ClipOutside
)

// Clip pairs a clip mode with the stencil reference value it tests or
// writes. The zero value means no clipping. Ref is ignored for ClipNone.
type Clip = gpu.Clip
