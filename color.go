// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"image/color"

	intColor "github.com/gogpu/g2d/internal/color"
)

// Color is an sRGB color with components in [0, 1]. Values cross into
// linear space (alpha untouched) before any clear or blend on the GPU.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from sRGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard color.Color to Color. The alpha is
// unpremultiplied so the components match what RGB-style constructors
// would produce.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	return Color{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 65535,
	}
}

// linear converts the color to linear space for the GPU. Alpha is linear
// already and passes through.
func (c Color) linear() [4]float32 {
	lc := intColor.SRGBToLinearColor(intColor.ColorF32{R: c.R, G: c.G, B: c.B, A: c.A})
	return [4]float32{lc.R, lc.G, lc.B, lc.A}
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = Color{}
)
