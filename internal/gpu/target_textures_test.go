package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewTargetTextures(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	tex, err := NewTargetTextures(device, 800, 600, gputypes.TextureFormatBGRA8Unorm, "target")
	if err != nil {
		t.Fatalf("NewTargetTextures failed: %v", err)
	}
	defer tex.Destroy(device)

	if tex.ColorView() == nil {
		t.Error("expected non-nil color view")
	}
	if tex.StencilView() == nil {
		t.Error("expected non-nil stencil view")
	}
	if tex.ColorTexture() == nil {
		t.Error("expected non-nil color texture")
	}
	w, h := tex.Size()
	if w != 800 || h != 600 {
		t.Errorf("size (%d, %d), want (800, 600)", w, h)
	}
}

func TestTargetTexturesDestroyIdempotent(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	tex, err := NewTargetTextures(device, 64, 64, gputypes.TextureFormatRGBA8Unorm, "target")
	if err != nil {
		t.Fatalf("NewTargetTextures failed: %v", err)
	}

	tex.Destroy(device)
	if tex.ColorView() != nil || tex.StencilView() != nil {
		t.Error("expected nil views after Destroy")
	}
	tex.Destroy(device)
}
