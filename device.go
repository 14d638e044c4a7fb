// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the integration point between g2d and GPU frameworks
// like gogpu. The host application implements DeviceHandle and passes it to
// NewRendererFromProvider, allowing g2d to render on the shared GPU device
// instead of creating its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// g2d-specific name for the interface while maintaining full compatibility
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NewRendererFromProvider builds a Renderer on a GPU device shared by the
// host application. The provider must additionally expose HalDevice() any
// and HalQueue() any returning hal.Device and hal.Queue; providers that do
// not yield ErrNoHALDevice.
//
// The renderer borrows the device: Destroy releases the renderer's
// pipelines and buffers but never the device itself.
func NewRendererFromProvider(provider DeviceHandle, opts ...Option) (*Renderer, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: missing HalDevice/HalQueue", ErrNoHALDevice)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALDevice)
	}
	return NewRenderer(device, queue, opts...)
}

// OpenDevice creates a standalone Vulkan device for offscreen rendering.
// This is the fallback path when no host application shares a device, for
// example in headless tools that render to an image.
//
// The returned cleanup function destroys the device and its instance; call
// it after destroying every renderer and resource created on the device.
func OpenDevice() (hal.Device, hal.Queue, func(), error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, nil, nil, fmt.Errorf("g2d: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("g2d: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, nil, nil, fmt.Errorf("g2d: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, nil, fmt.Errorf("g2d: open device: %w", err)
	}
	device := openDev.Device
	queue := openDev.Queue

	Logger().Info("g2d: GPU device opened", "adapter", selected.Info.Name)

	cleanup := func() {
		device.Destroy()
		instance.Destroy()
	}
	return device, queue, cleanup, nil
}
