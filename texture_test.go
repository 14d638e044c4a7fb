// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"errors"
	"image"
	"testing"
)

func TestNewTextureFromImage(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	tex, err := NewTextureFromImage(device, queue, img)
	if err != nil {
		t.Fatalf("NewTextureFromImage failed: %v", err)
	}

	w, h := tex.Size()
	if w != 4 || h != 3 {
		t.Errorf("expected size 4x3, got %dx%d", w, h)
	}
	if tex.Format() != SurfaceR8G8B8A8 {
		t.Errorf("expected R8G8B8A8 format, got %v", tex.Format())
	}
	if !tex.Format().HasAlphaChannel() {
		t.Error("expected uploaded texture format to carry alpha")
	}
	if tex.View() == nil {
		t.Error("expected non-nil texture view")
	}

	tex.Destroy()
	tex.Destroy()
}

func TestNewTextureFromImageConverts(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	// Non-RGBA images are converted on upload.
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	tex, err := NewTextureFromImage(device, queue, nrgba)
	if err != nil {
		t.Fatalf("NRGBA upload failed: %v", err)
	}
	defer tex.Destroy()

	// Subimages carry a non-zero origin and a padded stride.
	base := image.NewRGBA(image.Rect(0, 0, 8, 8))
	sub := base.SubImage(image.Rect(2, 2, 6, 6))
	subTex, err := NewTextureFromImage(device, queue, sub)
	if err != nil {
		t.Fatalf("subimage upload failed: %v", err)
	}
	defer subTex.Destroy()

	w, h := subTex.Size()
	if w != 4 || h != 4 {
		t.Errorf("expected subimage texture 4x4, got %dx%d", w, h)
	}
}

func TestNewTextureFromImageEmpty(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	if _, err := NewTextureFromImage(device, queue, image.NewRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrTargetSize) {
		t.Errorf("expected ErrTargetSize for empty image, got %v", err)
	}
}

func TestWrapTexture(t *testing.T) {
	tex := WrapTexture(nil, 16, 8, SurfaceR5G6B5)

	w, h := tex.Size()
	if w != 16 || h != 8 {
		t.Errorf("expected size 16x8, got %dx%d", w, h)
	}
	if tex.Format() != SurfaceR5G6B5 {
		t.Errorf("expected R5G6B5, got %v", tex.Format())
	}
	if tex.Format().HasAlphaChannel() {
		t.Error("expected no alpha for R5G6B5")
	}

	// Wrapped textures are borrowed; Destroy must not touch them.
	tex.Destroy()
}
