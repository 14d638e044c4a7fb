// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"errors"
	"testing"

	"github.com/gogpu/g2d/internal/gpu"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// newTestRenderer builds a renderer on a noop device. The cleanup function
// destroys the renderer and the device.
func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, func()) {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)
	r, err := NewRenderer(device, queue, opts...)
	if err != nil {
		cleanup()
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r, func() {
		r.Destroy()
		cleanup()
	}
}

func TestNewRendererDefaults(t *testing.T) {
	r, cleanup := newTestRenderer(t)
	defer cleanup()

	if r.MaxVertexCount() != 1024 {
		t.Errorf("expected default vertex capacity 1024, got %d", r.MaxVertexCount())
	}
}

func TestNewRendererOptions(t *testing.T) {
	r, cleanup := newTestRenderer(t,
		WithMaxVertexCount(256),
		WithColorFormat(gputypes.TextureFormatRGBA8Unorm),
	)
	defer cleanup()

	if r.MaxVertexCount() != 256 {
		t.Errorf("expected vertex capacity 256, got %d", r.MaxVertexCount())
	}
}

func TestCreateTarget(t *testing.T) {
	r, cleanup := newTestRenderer(t)
	defer cleanup()

	target, err := r.CreateTarget(32, 16)
	if err != nil {
		t.Fatalf("CreateTarget failed: %v", err)
	}
	w, h := target.Size()
	if w != 32 || h != 16 {
		t.Errorf("expected size 32x16, got %dx%d", w, h)
	}

	target.Destroy()
	target.Destroy()
}

func TestCreateTargetZeroSize(t *testing.T) {
	r, cleanup := newTestRenderer(t)
	defer cleanup()

	for _, dims := range [][2]uint32{{0, 16}, {16, 0}, {0, 0}} {
		if _, err := r.CreateTarget(dims[0], dims[1]); !errors.Is(err, ErrTargetSize) {
			t.Errorf("CreateTarget(%d, %d): expected ErrTargetSize, got %v",
				dims[0], dims[1], err)
		}
	}
}

func TestReadPixels(t *testing.T) {
	r, cleanup := newTestRenderer(t)
	defer cleanup()

	target, err := r.CreateTarget(20, 10)
	if err != nil {
		t.Fatalf("CreateTarget failed: %v", err)
	}
	defer target.Destroy()

	err = r.WithFrame(target, Viewport{}, func(f *Frame) error {
		return f.ClearColor(Black)
	})
	if err != nil {
		t.Fatalf("WithFrame failed: %v", err)
	}

	img, err := r.ReadPixels(target)
	if err != nil {
		t.Fatalf("ReadPixels failed: %v", err)
	}
	if img.Rect.Dx() != 20 || img.Rect.Dy() != 10 {
		t.Errorf("expected 20x10 image, got %dx%d", img.Rect.Dx(), img.Rect.Dy())
	}
	if img.Stride != 20*4 {
		t.Errorf("expected stride 80, got %d", img.Stride)
	}
	if len(img.Pix) != 20*10*4 {
		t.Errorf("expected %d pixel bytes, got %d", 20*10*4, len(img.Pix))
	}
}

func TestReadPixelsWrappedTarget(t *testing.T) {
	r, cleanup := newTestRenderer(t)
	defer cleanup()

	wrapped := WrapTarget(nil, nil, 8, 8)
	if _, err := r.ReadPixels(wrapped); err == nil {
		t.Error("expected error reading back a wrapped target")
	}
	if _, err := r.ReadPixels(nil); err == nil {
		t.Error("expected error reading back a nil target")
	}
}

func TestRendererDestroyIdempotent(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	r, err := NewRenderer(device, queue)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	r.Destroy()
	r.Destroy()
}

func TestClampViewport(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		want gpu.Viewport
	}{
		{"zero selects full target", Viewport{}, gpu.Viewport{X: 0, Y: 0, W: 64, H: 32}},
		{"inside", Viewport{X: 4, Y: 2, W: 10, H: 8}, gpu.Viewport{X: 4, Y: 2, W: 10, H: 8}},
		{"exact", Viewport{X: 0, Y: 0, W: 64, H: 32}, gpu.Viewport{X: 0, Y: 0, W: 64, H: 32}},
		{"too wide", Viewport{X: 60, Y: 0, W: 10, H: 10}, gpu.Viewport{X: 60, Y: 0, W: 4, H: 10}},
		{"negative origin", Viewport{X: -5, Y: -5, W: 10, H: 10}, gpu.Viewport{X: 0, Y: 0, W: 10, H: 10}},
		{"beyond target", Viewport{X: 100, Y: 100, W: 10, H: 10}, gpu.Viewport{X: 64, Y: 32, W: 0, H: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampViewport(tt.vp, 64, 32)
			if got != tt.want {
				t.Errorf("clampViewport(%+v) = %+v, want %+v", tt.vp, got, tt.want)
			}
		})
	}
}
