// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"image/color"
	"math"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.25, 0.5, 0.75)
	if c.R != 0.25 || c.G != 0.5 || c.B != 0.75 || c.A != 1 {
		t.Errorf("RGB(0.25, 0.5, 0.75) = %+v", c)
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.RGBA{R: 255, G: 0, B: 0, A: 255})
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("opaque red: got %+v", c)
	}

	// Premultiplied half-transparent white unpremultiplies back to 1.
	c = FromColor(color.RGBA{R: 128, G: 128, B: 128, A: 128})
	if math.Abs(float64(c.R-1)) > 1e-3 || math.Abs(float64(c.A-0.502)) > 1e-3 {
		t.Errorf("half-transparent white: got %+v", c)
	}

	if got := FromColor(color.RGBA{}); got != (Color{}) {
		t.Errorf("zero alpha: expected zero color, got %+v", got)
	}
}

func TestColorLinear(t *testing.T) {
	// Mid gray crosses the sRGB decode curve.
	lin := RGB(0.5, 0.5, 0.5).linear()
	for i := 0; i < 3; i++ {
		if math.Abs(float64(lin[i])-0.21404114) > 1e-6 {
			t.Errorf("component %d: expected 0.21404114, got %v", i, lin[i])
		}
	}
	if lin[3] != 1 {
		t.Errorf("alpha must pass through unchanged, got %v", lin[3])
	}

	// Black and white are fixed points.
	if got := Black.linear(); got != [4]float32{0, 0, 0, 1} {
		t.Errorf("black: got %v", got)
	}
	if got := White.linear(); got != [4]float32{1, 1, 1, 1} {
		t.Errorf("white: got %v", got)
	}

	// Alpha stays linear even when color channels convert.
	lin = Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5}.linear()
	if lin[3] != 0.5 {
		t.Errorf("alpha 0.5 must stay 0.5, got %v", lin[3])
	}
}

func TestCommonColors(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Color
	}{
		{"Black", Black, Color{0, 0, 0, 1}},
		{"White", White, Color{1, 1, 1, 1}},
		{"Red", Red, Color{1, 0, 0, 1}},
		{"Green", Green, Color{0, 1, 0, 1}},
		{"Blue", Blue, Color{0, 0, 1, 1}},
		{"Transparent", Transparent, Color{}},
	}
	for _, tt := range tests {
		if tt.c != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.c, tt.want)
		}
	}
}
