// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// halTestProvider implements DeviceHandle plus the HalDevice/HalQueue
// accessors NewRendererFromProvider requires.
type halTestProvider struct {
	device hal.Device
	queue  hal.Queue
}

func (p *halTestProvider) Device() gpucontext.Device             { return nil }
func (p *halTestProvider) Queue() gpucontext.Queue               { return nil }
func (p *halTestProvider) Adapter() gpucontext.Adapter           { return nil }
func (p *halTestProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (p *halTestProvider) HalDevice() any                        { return p.device }
func (p *halTestProvider) HalQueue() any                         { return p.queue }

// bareProvider implements DeviceHandle without HAL accessors.
type bareProvider struct{}

func (bareProvider) Device() gpucontext.Device             { return nil }
func (bareProvider) Queue() gpucontext.Queue               { return nil }
func (bareProvider) Adapter() gpucontext.Adapter           { return nil }
func (bareProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatUndefined }

func TestNewRendererFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	r, err := NewRendererFromProvider(&halTestProvider{device: device, queue: queue})
	if err != nil {
		t.Fatalf("NewRendererFromProvider failed: %v", err)
	}
	defer r.Destroy()

	if r.MaxVertexCount() != 1024 {
		t.Errorf("expected default vertex capacity, got %d", r.MaxVertexCount())
	}
}

func TestNewRendererFromProviderNoHAL(t *testing.T) {
	if _, err := NewRendererFromProvider(bareProvider{}); !errors.Is(err, ErrNoHALDevice) {
		t.Errorf("expected ErrNoHALDevice for provider without HAL accessors, got %v", err)
	}
}

func TestNewRendererFromProviderNilHandles(t *testing.T) {
	if _, err := NewRendererFromProvider(&halTestProvider{}); !errors.Is(err, ErrNoHALDevice) {
		t.Errorf("expected ErrNoHALDevice for nil HAL handles, got %v", err)
	}
}
